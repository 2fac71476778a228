package cli

import (
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/jlrickert/datadigest/pkg/config"
)

// Result is one computed digest.
type Result struct {
	Path      string `json:"path"`
	Targets   string `json:"targets,omitempty"`
	Kind      string `json:"kind"`
	Digest    string `json:"digest"`
	Algorithm string `json:"algorithm"`
}

func printResult(w io.Writer, output string, res Result) error {
	if output == config.OutputJSON {
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, res.Digest)
	return err
}
