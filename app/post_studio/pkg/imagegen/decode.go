package imagegen

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

var (
	// ErrEmptyImage 图片模型没有返回图片数据
	ErrEmptyImage = errors.New("image model returned no image data")
	// ErrDecodeImage 图片数据无法解码
	ErrDecodeImage = errors.New("decode image")
)

// Decode 解码 base64 图片并转换为不透明的 RGB 位图
func Decode(b64 string) (image.Image, error) {
	b64 = strings.TrimSpace(b64)
	if b64 == "" {
		return nil, ErrEmptyImage
	}

	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrDecodeImage, err)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}
	return toRGB(src), nil
}

// toRGB 丢弃透明通道，保留原始 RGB 值
func toRGB(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return dst
}
