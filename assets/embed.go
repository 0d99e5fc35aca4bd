// Package assets embeds the application icons.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
)

//go:embed icons/*.png icons/*.svg
var embeddedIcons embed.FS

type icon struct {
	img  image.Image
	data []byte
}

var (
	loadOnce sync.Once
	loadErr  error
	icons    map[int]icon
	svgData  []byte
)

// iconSize parses the pixel size from names like "pixelart-64.png".
func iconSize(name string) (int, bool) {
	base := strings.TrimSuffix(name, ".png")
	i := strings.LastIndex(base, "-")
	if i < 0 || i == len(base)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(base[i+1:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func load() {
	icons = make(map[int]icon)
	entries, err := fs.ReadDir(embeddedIcons, "icons")
	if err != nil {
		loadErr = err
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		data, err := embeddedIcons.ReadFile(path.Join("icons", name))
		if err != nil {
			loadErr = err
			return
		}
		if strings.HasSuffix(name, ".svg") {
			svgData = data
			continue
		}
		size, ok := iconSize(name)
		if !ok {
			continue
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			loadErr = fmt.Errorf("decode %s: %w", name, err)
			return
		}
		icons[size] = icon{img: img, data: data}
	}
}

func ensure() error {
	loadOnce.Do(load)
	return loadErr
}

// IconImage returns the embedded icon of exactly the requested size.
func IconImage(size int) (image.Image, error) {
	if err := ensure(); err != nil {
		return nil, err
	}
	ic, ok := icons[size]
	if !ok {
		return nil, fmt.Errorf("icon %dpx not embedded", size)
	}
	return ic.img, nil
}

// IconPNG returns a copy of the encoded icon of the requested size.
func IconPNG(size int) ([]byte, error) {
	if err := ensure(); err != nil {
		return nil, err
	}
	ic, ok := icons[size]
	if !ok {
		return nil, fmt.Errorf("icon %dpx not embedded", size)
	}
	return append([]byte(nil), ic.data...), nil
}

// IconSizes lists the embedded sizes, smallest first.
func IconSizes() []int {
	if err := ensure(); err != nil {
		return nil
	}
	sizes := make([]int, 0, len(icons))
	for size := range icons {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// IconSVG returns the scalable icon.
func IconSVG() ([]byte, error) {
	if err := ensure(); err != nil {
		return nil, err
	}
	if len(svgData) == 0 {
		return nil, fmt.Errorf("svg icon not embedded")
	}
	return append([]byte(nil), svgData...), nil
}
