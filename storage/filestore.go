// Package storage 上传文件存储
//
// 与数据库层相互独立：上传流程先写文件再写记录，
// 文件写入失败时不得产生数据库记录，因此这里抽成接口方便单独注入失败。
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// FileStore 上传文件存储接口
type FileStore interface {
	// Save 清洗文件名并写入内容，名字冲突时自动追加 _1/_2 序号，
	// 返回实际落盘的文件名
	Save(name string, r io.Reader) (string, error)
	// Exists 判断文件是否存在
	Exists(name string) bool
	// Remove 删除文件
	Remove(name string) error
}

// DirStore 目录存储实现
type DirStore struct {
	Dir string
}

// NewDirStore 创建目录存储，目录不存在时自动创建
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &DirStore{Dir: dir}, nil
}

func (s *DirStore) Save(name string, r io.Reader) (string, error) {
	final := s.resolveName(SanitizeFilename(name))
	path := filepath.Join(s.Dir, final)

	// O_EXCL: resolveName 之后仍可能被并发请求抢先占用同名文件
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	return final, nil
}

func (s *DirStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, name))
	return err == nil
}

func (s *DirStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.Dir, name))
}

// resolveName 解决文件名冲突：foo.mp4 -> foo_1.mp4 -> foo_2.mp4 ...
func (s *DirStore) resolveName(name string) string {
	if !s.Exists(name) {
		return name
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", base, counter, ext)
		if !s.Exists(candidate) {
			return candidate
		}
	}
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename 将客户端上报的文件名清洗为安全的落盘名：
// 去掉路径部分，非 [A-Za-z0-9._-] 的字符段替换为下划线，去掉前导点
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if name == "" || name == "_" {
		return "file"
	}
	return name
}
