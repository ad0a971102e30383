package render

import (
	"fmt"
	"io"
	"maps"
	"text/template"

	"github.com/bjaus/ltsv"
)

func parseTemplate(tmplStr string) (*template.Template, error) {
	tmpl, err := template.New("").Option("missingkey=zero").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return tmpl, nil
}

func executeTemplate(w io.Writer, tmpl *template.Template, rec ltsv.Record) error {
	if err := tmpl.Execute(w, maps.Collect(rec.All())); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeGoTemplate(w io.Writer, tmplStr string, recs []ltsv.Record) error {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err := executeTemplate(w, tmpl, rec); err != nil {
			return err
		}
	}
	return nil
}
