package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/whencanirun/internal/adapters/detector"
	"go.trai.ch/whencanirun/internal/core/domain"
	"go.trai.ch/whencanirun/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format names accepted by Show.
const (
	FormatAuto = "auto"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Requirements writes every resolved requirement to w exactly as read. A
// final requirement without a line terminator is terminated on output.
func (a *App) Requirements(ctx context.Context, opts Options, w io.Writer) error {
	d, err := a.Resolve(ctx, opts)
	if err != nil {
		return err
	}

	for _, req := range d.InstallRequires {
		line := req.String()
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if _, err := io.WriteString(w, line); err != nil {
			return zerr.Wrap(err, domain.ErrRenderFailed.Error())
		}
	}
	return nil
}

// Show writes the resolved distribution to w in the given format.
func (a *App) Show(ctx context.Context, opts Options, format string, w io.Writer) error {
	if format == "" {
		format = FormatAuto
	}
	if format != FormatAuto && format != FormatYAML && format != FormatJSON {
		return zerr.With(domain.ErrInvalidFormat, "format", format)
	}

	d, err := a.Resolve(ctx, opts)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = renderJSON(d)
	case FormatYAML:
		data, err = renderYAML(d)
	default:
		if a.detectMode() == detector.ModeStyled {
			data = []byte(renderSummary(d))
		} else {
			data, err = renderYAML(d)
		}
	}
	if err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}

	if _, err := w.Write(data); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

// view is the presentation form of a distribution. Requirements are shown
// without their line terminators; descriptors written by Build keep them.
type view struct {
	Name            string   `json:"name" yaml:"name"`
	Version         string   `json:"version" yaml:"version"`
	Description     string   `json:"description" yaml:"description"`
	Author          string   `json:"author" yaml:"author"`
	AuthorEmail     string   `json:"author_email" yaml:"author_email"`
	InstallRequires []string `json:"install_requires" yaml:"install_requires"`
	Scripts         []string `json:"scripts" yaml:"scripts"`
	Fingerprint     string   `json:"fingerprint" yaml:"fingerprint"`
}

func newView(d *domain.Distribution) view {
	return view{
		Name:            d.Name,
		Version:         d.Version,
		Description:     d.Description,
		Author:          d.Author,
		AuthorEmail:     d.AuthorEmail,
		InstallRequires: d.InstallRequires.Specs(),
		Scripts:         d.Scripts,
		Fingerprint:     d.Fingerprint,
	}
}

func renderJSON(d *domain.Distribution) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newView(d)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderYAML(d *domain.Distribution) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newView(d)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderSummary(d *domain.Distribution) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", style.Title.Render(d.Name+" "+d.Version))
	if d.Description != "" {
		fmt.Fprintf(&b, "%s\n", d.Description)
	}
	fmt.Fprintf(&b, "%s %s <%s>\n", style.Label.Render("author:"), d.Author, d.AuthorEmail)
	fmt.Fprintf(&b, "%s %s\n", style.Label.Render("fingerprint:"), d.Fingerprint)

	fmt.Fprintf(&b, "%s\n", style.Label.Render("scripts:"))
	for _, s := range d.Scripts {
		fmt.Fprintf(&b, "  %s %s\n", style.Dot, s)
	}

	fmt.Fprintf(&b, "%s\n", style.Label.Render(fmt.Sprintf("install_requires (%d):", len(d.InstallRequires))))
	for _, req := range d.InstallRequires {
		fmt.Fprintf(&b, "  %s %s\n", style.Item.Render(style.Check), req.Spec())
	}

	return b.String()
}
