package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/bjaus/ltsv"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{ltsv.Stdio}
	}
	var w io.Writer = cc.Out
	if cfg.Quiet {
		w = io.Discard
	}
	bad, err := validateFiles(w, newPalette(cfg.colorOut(cc.Out)), cc.In, args, cfg.logger())
	if err != nil {
		return err
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// validateFiles validates each path in turn and returns the total number of
// invalid lines.
func validateFiles(w io.Writer, pal *palette, in io.Reader, paths []string, log *zap.Logger) (int, error) {
	bad := 0
	for _, path := range paths {
		n, err := validateFile(w, pal, in, path)
		bad += n
		if err != nil {
			return bad, err
		}
		log.Debug("validated", zap.String("file", path), zap.Int("invalid", n))
	}
	return bad, nil
}

// validateFile decodes every line of path in strict mode, writes
// "path:line: reason" for each line that fails and returns their number.
// I/O failures end validation.
func validateFile(w io.Writer, pal *palette, in io.Reader, path string) (int, error) {
	c, err := openCursor(ltsv.NewParser().Strict(), in, path)
	if err != nil {
		return 0, err
	}
	defer c.Close()
	bad := 0
	for c.HasNext() {
		_, err := c.Next()
		if err == nil {
			continue
		}
		var de *ltsv.DecodeError
		if !errors.As(err, &de) {
			return bad, fmt.Errorf("%s: %w", path, err)
		}
		bad++
		if _, err := fmt.Fprintf(w, "%s:%d: %s\n", path, de.Line, pal.bad(de.Reason)); err != nil {
			return bad, err
		}
	}
	if err := c.Err(); err != nil {
		return bad, fmt.Errorf("%s: %w", path, err)
	}
	return bad, nil
}
