package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	utillog "github.com/Azure/azure-mgmt-samples/pkg/util/log"
)

var (
	validate = flag.Bool("validate", false, "report files missing the license header instead of fixing them")

	goLicense = []byte(`// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.`)
)

// applyGoLicense walks root and inserts the license header after the package
// clause of every Go file lacking it. With validate set, files are left alone
// and only reported. The paths missing the header are returned.
func applyGoLicense(log *logrus.Entry, root string, validate bool) ([]string, error) {
	var missing []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			switch d.Name() {
			case "_examples", "vendor", ".git":
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		if bytes.Contains(b, []byte("DO NOT EDIT.")) || bytes.Contains(b, goLicense) {
			return nil
		}

		missing = append(missing, path)
		if validate {
			log.Warnf("%s: missing license header", path)
			return nil
		}

		i := bytes.Index(b, []byte("package "))
		if i == -1 {
			return nil
		}
		i += bytes.Index(b[i:], []byte("\n"))

		var bb []byte
		bb = append(bb, b[:i]...)
		bb = append(bb, []byte("\n\n")...)
		bb = append(bb, goLicense...)
		bb = append(bb, b[i:]...)

		log.Infof("%s: adding license header", path)
		return os.WriteFile(path, bb, 0666)
	})

	return missing, err
}

func main() {
	flag.Parse()

	log := utillog.GetLogger()

	missing, err := applyGoLicense(log, ".", *validate)
	if err != nil {
		log.Fatal(err)
	}

	if *validate && len(missing) > 0 {
		log.Fatalf("%d files are missing the license header", len(missing))
	}
}
