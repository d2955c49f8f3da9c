package internal

import "github.com/veandco/go-sdl2/ttf"

const (
	headerFontSize = 28
	labelFontSize  = 20
)

// FontSet holds the fonts used by card headers.
type FontSet struct {
	Header *ttf.Font // Route title in the header bar
	Label  *ttf.Font // Back-button label
}

var fonts FontSet

// InitFonts loads the header fonts from a single TTF file.
func InitFonts(path string) error {
	header, err := ttf.OpenFont(path, headerFontSize)
	if err != nil {
		return err
	}

	label, err := ttf.OpenFont(path, labelFontSize)
	if err != nil {
		header.Close()
		return err
	}

	fonts = FontSet{Header: header, Label: label}
	return nil
}

// GetFonts returns the loaded fonts. Fields are nil when InitFonts was
// not called or failed.
func GetFonts() FontSet {
	return fonts
}

func closeFonts() {
	if fonts.Header != nil {
		fonts.Header.Close()
	}
	if fonts.Label != nil {
		fonts.Label.Close()
	}
	fonts = FontSet{}
}
