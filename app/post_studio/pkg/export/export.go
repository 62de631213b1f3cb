package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// CaptionFileName 文案下载文件名
const CaptionFileName = "caption.txt"

var imageNamePattern = regexp.MustCompile(`^post_image_\d{8}_\d{6}(_\d+)?\.png$`)

// ImageFileName 按生成时间命名图片，例如 post_image_20260301_093000.png
func ImageFileName(t time.Time) string {
	return "post_image_" + t.Format("20060102_150405") + ".png"
}

// ValidImageName 只接受本服务生成的图片文件名
func ValidImageName(name string) bool {
	return imageNamePattern.MatchString(name)
}

// SaveImage 把图片写入 dir 下的时间戳 PNG，重名时追加 _N 后缀，返回完整路径
func SaveImage(dir string, img image.Image, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	base := strings.TrimSuffix(ImageFileName(t), ".png")
	for i := 0; ; i++ {
		name := base + ".png"
		if i > 0 {
			name = fmt.Sprintf("%s_%d.png", base, i)
		}
		path := filepath.Join(dir, name)

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", err
		}

		if err := png.Encode(f, img); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("encode png: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		return path, nil
	}
}

// CaptionText 文案下载内容：文案 + 空行 + 标签行
func CaptionText(c dm.CopyResult) string {
	return c.PostText()
}

// SaveCaption 把文案写入 dir/caption.txt，返回完整路径
func SaveCaption(dir string, c dm.CopyResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, CaptionFileName)
	if err := os.WriteFile(path, []byte(CaptionText(c)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
