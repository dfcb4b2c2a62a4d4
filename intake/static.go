package intake

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"

	"applicant-intake/intake/domain"
)

type StaticOptions struct {
	Dir   string
	Index string // padrão "index.html"
}

// Static serve os arquivos do front-end a partir de um diretório raiz.
//
// Os arquivos são abertos via os.Root: nenhum caminho (nem symlink) consegue
// sair do diretório. Qualquer recusa vira 404.
type Static struct {
	root  *os.Root
	index string
}

func NewStatic(opts StaticOptions) (*Static, error) {
	if opts.Index == "" {
		opts.Index = "index.html"
	}
	if !fs.ValidPath(opts.Index) {
		return nil, fmt.Errorf("invalid static index %q", opts.Index)
	}
	root, err := os.OpenRoot(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("open static dir: %w", err)
	}
	return &Static{root: root, index: opts.Index}, nil
}

func (s *Static) Close() error { return s.root.Close() }

// ServeHTTP serve a página de entrada em "/" e o arquivo correspondente nos
// demais caminhos.
func (s *Static) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" {
		name = s.index
	}

	f, info, err := s.open(name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("static %q: %v", name, err)
		}
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	// ServeContent escolhe o Content-Type pela extensão (e faz sniff se não houver).
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// open resolve name sob a raiz. Caminhos absolutos, com "..", com barra final
// ou que apontem para diretório retornam ErrNotFound.
func (s *Static) open(name string) (*os.File, fs.FileInfo, error) {
	if !fs.ValidPath(name) || strings.Contains(name, `\`) {
		return nil, nil, domain.ErrNotFound
	}

	f, err := s.root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) || isEscape(err) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, nil, domain.ErrNotFound
	}
	return f, info, nil
}

// os.Root não exporta o erro de escape; ele vem dentro de um *PathError.
func isEscape(err error) bool {
	var pe *fs.PathError
	return errors.As(err, &pe) && strings.Contains(pe.Err.Error(), "escapes")
}
