package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FS — файловые операции, нужные хранилищу: прочитать файл целиком,
// записать содержимое во временный файл с fsync, атомарно переименовать,
// скопировать для бэкапа. Абстракция существует ради тестов отказов
// записи; в бою всегда используется OS.
type FS interface {
	ReadFile(path string) ([]byte, error)
	// WriteTemp пишет data во временный файл рядом с path, доводит его до
	// стабильного носителя и возвращает путь временного файла.
	WriteTemp(path string, data []byte) (string, error)
	Rename(oldpath, newpath string) error
	Copy(src, dst string) error
	Remove(path string) error
	Exists(path string) bool
}

// OS — реализация FS поверх настоящей файловой системы.
type OS struct{}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OS) WriteTemp(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

func (OS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (OS) Copy(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func (OS) Remove(path string) error {
	return os.Remove(path)
}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsNotExist сообщает, что ошибка чтения — отсутствие файла.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
