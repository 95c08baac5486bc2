package iconset

import (
	"strconv"
)

// Idiom is the asset catalog device class an icon serves.
type Idiom string

const (
	IdiomPhone     Idiom = "iphone"
	IdiomTablet    Idiom = "ipad"
	IdiomMarketing Idiom = "ios-marketing"
)

// Entry is one required output file of the app icon set.
type Entry struct {
	Filename string
	// Points is the nominal size in points; 83.5 is a legal value.
	Points float64
	Scale  int
	Idiom  Idiom
}

// Pixels returns the rendered edge length in pixels.
func (e Entry) Pixels() int {
	return int(e.Points * float64(e.Scale))
}

// SizeLabel renders the nominal size as the catalog expects, e.g. "83.5x83.5".
func (e Entry) SizeLabel() string {
	p := strconv.FormatFloat(e.Points, 'f', -1, 64)
	return p + "x" + p
}

// ScaleLabel renders the scale as the catalog expects, e.g. "2x".
func (e Entry) ScaleLabel() string {
	return strconv.Itoa(e.Scale) + "x"
}

var appIcon = []Entry{
	{Filename: "icon-20@2x.png", Points: 20, Scale: 2, Idiom: IdiomPhone},
	{Filename: "icon-20@3x.png", Points: 20, Scale: 3, Idiom: IdiomPhone},
	{Filename: "icon-29@2x.png", Points: 29, Scale: 2, Idiom: IdiomPhone},
	{Filename: "icon-29@3x.png", Points: 29, Scale: 3, Idiom: IdiomPhone},
	{Filename: "icon-40@2x.png", Points: 40, Scale: 2, Idiom: IdiomPhone},
	{Filename: "icon-40@3x.png", Points: 40, Scale: 3, Idiom: IdiomPhone},
	{Filename: "icon-60@2x.png", Points: 60, Scale: 2, Idiom: IdiomPhone},
	{Filename: "icon-60@3x.png", Points: 60, Scale: 3, Idiom: IdiomPhone},

	{Filename: "icon-20.png", Points: 20, Scale: 1, Idiom: IdiomTablet},
	{Filename: "icon-20@2x-ipad.png", Points: 20, Scale: 2, Idiom: IdiomTablet},
	{Filename: "icon-29.png", Points: 29, Scale: 1, Idiom: IdiomTablet},
	{Filename: "icon-29@2x-ipad.png", Points: 29, Scale: 2, Idiom: IdiomTablet},
	{Filename: "icon-40.png", Points: 40, Scale: 1, Idiom: IdiomTablet},
	{Filename: "icon-40@2x-ipad.png", Points: 40, Scale: 2, Idiom: IdiomTablet},
	{Filename: "icon-76.png", Points: 76, Scale: 1, Idiom: IdiomTablet},
	{Filename: "icon-76@2x.png", Points: 76, Scale: 2, Idiom: IdiomTablet},
	{Filename: "icon-83.5@2x.png", Points: 83.5, Scale: 2, Idiom: IdiomTablet},

	{Filename: "icon-1024.png", Points: 1024, Scale: 1, Idiom: IdiomMarketing},
}

// AppIcon returns the ordered app icon size table. The slice is a copy.
func AppIcon() []Entry {
	out := make([]Entry, len(appIcon))
	copy(out, appIcon)
	return out
}
