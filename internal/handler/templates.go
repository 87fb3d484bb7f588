package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/taskdeck/taskdeck/web"
)

// pageCache maps a page filename (e.g. "login.html") to a compiled template
// set containing base.html plus that one page file. Each page gets its own
// set so {{define}} blocks don't collide.
var pageCache map[string]*template.Template

func init() {
	pageCache = make(map[string]*template.Template)
	err := fs.WalkDir(web.TemplateFS, "templates/pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return e
		}
		t, err := template.New("").ParseFS(web.TemplateFS, "templates/base.html", p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		pageCache[filepath.Base(p)] = t
		return nil
	})
	if err != nil {
		panic("load templates: " + err.Error())
	}
}

// render writes the named page wrapped in the base layout. Headers must be
// set before calling; render does not touch the status code unless nothing
// has been written yet.
func render(w http.ResponseWriter, name string, data any) {
	t, ok := pageCache[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}
