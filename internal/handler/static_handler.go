package handler

import (
	"net/http"
	"os"
	"path/filepath"
)

// StaticConfig holds configuration for the StaticHandler.
type StaticConfig struct {
	// Dir holds index.html plus the js/ and images/ asset trees.
	// Corresponds to the STATIC_DIR environment variable.
	Dir string
}

// StaticHandler serves the landing page and its assets.
type StaticHandler struct {
	cfg   StaticConfig
	files http.Handler
}

func NewStaticHandler(cfg StaticConfig) *StaticHandler {
	return &StaticHandler{
		cfg:   cfg,
		files: http.FileServer(filesOnly{http.Dir(cfg.Dir)}),
	}
}

// Index handles GET /.
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.cfg.Dir, "index.html"))
}

// Assets handles GET /js/... and GET /images/... . http.Dir confines lookups
// to cfg.Dir; directories answer 404.
func (h *StaticHandler) Assets(w http.ResponseWriter, r *http.Request) {
	h.files.ServeHTTP(w, r)
}

// filesOnly hides directories so the file server never lists them.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if st.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
