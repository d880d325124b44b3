package media

import (
	"errors"
	"io"
	"net/http"
)

var ErrMissingFile = errors.New("missing file field")

// FormFileBytes reads one multipart file part fully into memory. The caller
// owns multipart cleanup (r.MultipartForm.RemoveAll) so temp files never
// outlive the request regardless of how the insert goes.
func FormFileBytes(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrMissingFile
		}
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
