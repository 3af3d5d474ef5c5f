package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/xiaogao007/Stickplanet/internal/security"
)

const (
	imagePrefix      = "checkin_images"
	fileNameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	fileNameRandLen  = 12
	defaultImageExt  = ".jpg"
)

var safeExtPattern = regexp.MustCompile(`^\.[a-z0-9]{1,5}$`)

// LocalStore keeps uploads on the local filesystem and resolves
// references to paths under a public base the app serves statically.
type LocalStore struct {
	baseDir    string
	publicBase string
}

func NewLocalStore(baseDir string, publicBase string) *LocalStore {
	return &LocalStore{
		baseDir:    baseDir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}
}

func (store *LocalStore) Save(originalName string, reader io.Reader) (string, error) {
	random, err := security.RandomString(fileNameRandLen, fileNameAlphabet)
	if err != nil {
		return "", fmt.Errorf("generate file name: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !safeExtPattern.MatchString(ext) {
		ext = defaultImageExt
	}
	ref := fmt.Sprintf("%s/%d_%s%s", imagePrefix, time.Now().UnixMilli(), random, ext)

	targetPath := filepath.Join(store.baseDir, filepath.FromSlash(ref))
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	file, err := os.Create(targetPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		_ = os.Remove(targetPath)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return ref, nil
}

func (store *LocalStore) ResolveURL(ref string) string {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "/")
	if ref == "" {
		return ""
	}
	return store.publicBase + "/" + ref
}
