package upload

import (
	"path/filepath"
	"strings"
)

// Category is the kind of an uploaded file, derived from its extension
type Category string

// Supported categories
const (
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryDocument Category = "document"
)

// Categories lists all categories in a stable order
var Categories = []Category{CategoryImage, CategoryVideo, CategoryDocument}

var extensionCategories = map[string]Category{
	".png":  CategoryImage,
	".jpg":  CategoryImage,
	".jpeg": CategoryImage,
	".gif":  CategoryImage,
	".webp": CategoryImage,
	".mp4":  CategoryVideo,
	".webm": CategoryVideo,
	".mov":  CategoryVideo,
	".avi":  CategoryVideo,
	".pdf":  CategoryDocument,
	".doc":  CategoryDocument,
	".docx": CategoryDocument,
}

// Dir returns the name of the folder files of this category are stored in
func (c Category) Dir() string {
	return string(c) + "s"
}

// Extension returns the lower-cased extension of filename including the
// leading dot, or "" if it has none.
func Extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// Classify returns the category and normalized extension of filename.
// Unknown extensions yield an UnsupportedFileTypeError.
func Classify(filename string) (Category, string, error) {
	ext := Extension(filename)
	category, ok := extensionCategories[ext]
	if !ok {
		return "", ext, UnsupportedFileTypeError{Ext: ext}
	}
	return category, ext, nil
}
