// Package ui serves a small web front end and JSON API for the checker.
package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"os"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/arith/format"
	"github.com/dhamidi/arith/syntax"
)

//go:embed static templates
var embeddedFS embed.FS

const maxBody = 1 << 20

type Server struct {
	staticFS   fs.FS
	templateFS fs.FS
	funcMap    template.FuncMap
	mux        *http.ServeMux
	caret      format.CaretMode
	log        commonlog.Logger
}

type Option func(*Server)

func WithCaret(mode format.CaretMode) Option {
	return func(s *Server) {
		s.caret = mode
	}
}

func NewServer(opts ...Option) (*Server, error) {
	s := &Server{
		staticFS:   overlayFS("ui/static", mustSub(embeddedFS, "static")),
		templateFS: overlayFS("ui/templates", mustSub(embeddedFS, "templates")),
		funcMap: template.FuncMap{
			"state": func(res syntax.Result) int {
				return int(res.Code)
			},
		},
		mux:   http.NewServeMux(),
		caret: format.CaretEnd,
		log:   commonlog.GetLogger("arith.ui"),
	}
	for _, opt := range opts {
		opt(s)
	}

	// fail at startup rather than on the first request
	if _, err := s.parseTemplates(); err != nil {
		return nil, err
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))
	s.mux.HandleFunc("POST /api/check", s.handleCheck)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := s.parseTemplates()
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Errorf("render %s: %s", name, err)
	}
}

type indexData struct {
	Input   string
	Checked bool
	Result  syntax.Result
	Report  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var data indexData
	if r.URL.Query().Has("input") {
		data.Input = r.URL.Query().Get("input")
		data.Checked = true
		data.Result = syntax.Parse(data.Input)

		var buf bytes.Buffer
		if err := format.WriteDiagnostic(&buf, data.Result, s.caret); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data.Report = buf.String()
		s.log.Debugf("checked %q: state %d", data.Input, int(data.Result.Code))
	}
	s.render(w, "index.html", data)
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

type checkRequest struct {
	Input string `json:"input"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
			return
		}
		if !r.Form.Has("input") {
			http.Error(w, "must provide input", http.StatusBadRequest)
			return
		}
		req.Input = r.FormValue("input")
	}

	res := syntax.Parse(req.Input)
	s.log.Debugf("api check %q: state %d", req.Input, int(res.Code))

	w.Header().Set("Content-Type", "application/json")
	if err := format.NewJSONEncoder(w, format.Options{Caret: s.caret}).Encode(res); err != nil {
		s.log.Errorf("encode response: %s", err)
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// overlayFS serves files from primaryPath on disk when present, so
// templates can be edited without rebuilding.
type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
