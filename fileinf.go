// Package main (fileinf.go) :
// These methods retrieve resource metadata using the Drive API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// getFileInf : Retrieve file information using Drive API.
func (p *para) getFileInf() (*drive.File, error) {
	srv, err := drive.NewService(context.Background(), option.WithAPIKey(p.APIKey))
	if err != nil {
		return nil, err
	}
	fields := []googleapi.Field{"createdTime,id,md5Checksum,mimeType,modifiedTime,name,shared,size,webContentLink"}
	return srv.Files.Get(p.ID).Fields(fields...).Do()
}

// showFileInf : Show file information.
func (p *para) showFileInf() error {
	if p.APIKey == "" {
		return errors.New("when you want to use the option '--fileinf', please use API key")
	}
	dlfile, err := p.getFileInf()
	if err != nil {
		return err
	}
	r, err := json.Marshal(dlfile)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.Out, "%s\n", r)
	return nil
}
