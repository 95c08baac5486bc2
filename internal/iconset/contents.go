package iconset

import (
	"encoding/json"
	"fmt"
	"io"
)

// ContentsFilename is the manifest name Xcode reads inside an .appiconset.
const ContentsFilename = "Contents.json"

// Contents is the Contents.json document of an app icon set.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// Image is one manifest record.
type Image struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// Info is the fixed manifest metadata block.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// NewContents builds the manifest for entries, preserving their order.
func NewContents(entries []Entry) Contents {
	images := make([]Image, 0, len(entries))
	for _, e := range entries {
		images = append(images, Image{
			Filename: e.Filename,
			Idiom:    string(e.Idiom),
			Scale:    e.ScaleLabel(),
			Size:     e.SizeLabel(),
		})
	}
	return Contents{
		Images: images,
		Info:   Info{Author: "xcode", Version: 1},
	}
}

// Encode writes the manifest as two-space indented JSON.
func (c Contents) Encode(w io.Writer) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal contents: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write contents: %w", err)
	}
	return nil
}
