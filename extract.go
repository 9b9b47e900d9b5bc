// Package main (extract.go) :
// These methods unpack the downloaded archive into the working directory.
package main

import (
	"archive/tar"
	"fmt"
	"os"

	"github.com/mholt/archiver/v3"
	"github.com/rs/zerolog/log"
)

// extract : Unpack the archive, listing every entry on stdout. The archive
// format is chosen by the filename extension. Existing files are overwritten
// without prompting, archives containing symlink entries are refused.
func (p *para) extract(archive string) error {
	uaIface, err := archiver.ByExtension(archive)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", archive, err)
	}
	un, ok := uaIface.(archiver.Unarchiver)
	if !ok {
		return fmt.Errorf("'%s' is not an archive format (%T)", archive, uaIface)
	}
	mytar := &archiver.Tar{
		OverwriteExisting:      true,
		MkdirAll:               true,
		ImplicitTopLevelFolder: false,
		ContinueOnError:        false,
	}
	switch v := uaIface.(type) {
	case *archiver.Tar:
		un = mytar
	case *archiver.TarBrotli:
		v.Tar = mytar
	case *archiver.TarBz2:
		v.Tar = mytar
	case *archiver.TarGz:
		v.Tar = mytar
	case *archiver.TarLz4:
		v.Tar = mytar
	case *archiver.TarSz:
		v.Tar = mytar
	case *archiver.TarXz:
		v.Tar = mytar
	case *archiver.TarZstd:
		v.Tar = mytar
	}
	err = archiver.Walk(archive, func(f archiver.File) error {
		if f.FileInfo.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("archive contains a symlink: %s", f.Name())
		}
		if h, ok := f.Header.(*tar.Header); ok {
			fmt.Fprintln(p.Out, h.Name)
		} else {
			fmt.Fprintln(p.Out, f.Name())
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reading %s: %w", archive, err)
	}
	log.Info().Msgf("Extracting %s to %s", archive, p.WorkDir)
	if err := un.Unarchive(archive, p.WorkDir); err != nil {
		return fmt.Errorf("extracting %s: %w", archive, err)
	}
	return nil
}
