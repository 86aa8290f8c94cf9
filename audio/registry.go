// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

// mimeFormats maps sniffed MIME types to registry keys. Children are
// matched before parents by walking up from the detected type.
var mimeFormats = map[string]string{
	"audio/wav":       "wav",
	"audio/x-wav":     "wav",
	"audio/mpeg":      "mp3",
	"audio/ogg":       "ogg",
	"application/ogg": "ogg",
	"audio/aiff":      "aiff",
	"audio/x-aiff":    "aiff",
}

// extAliases folds common file extensions onto registry keys.
var extAliases = map[string]string{
	"wave": "wav",
	"oga":  "ogg",
	"aif":  "aiff",
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Formats returns the registered format keys.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}

	return keys
}

// Detect sniffs head (the first bytes of a file) and returns the format key
// and decoder for it.
func (r *Registry) Detect(head []byte) (string, Decoder, bool) {
	for m := mimetype.Detect(head); m != nil; m = m.Parent() {
		format, ok := mimeFormats[m.String()]
		if !ok {
			continue
		}

		if d, ok := r.Get(format); ok {
			return format, d, true
		}
	}

	return "", nil, false
}

// Lookup resolves the decoder for a file, trying its content first and the
// extension of name second.
func (r *Registry) Lookup(name string, head []byte) (string, Decoder, error) {
	if format, d, ok := r.Detect(head); ok {
		return format, d, nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if alias, ok := extAliases[ext]; ok {
		ext = alias
	}

	if d, ok := r.Get(ext); ok {
		return ext, d, nil
	}

	return "", nil, ErrUnknownFormat
}
