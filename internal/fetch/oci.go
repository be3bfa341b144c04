/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fetch

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/google/go-containerregistry/pkg/crane"
	v1 "github.com/google/go-containerregistry/pkg/v1"

	"github.com/stromee/pulumi-operator/internal/apperrors"
	"github.com/stromee/pulumi-operator/internal/repository"
)

// fetchOci pulls source.Url:source.Tag as an OCI artifact and extracts its
// layers (program source packaged as a tarball per layer) into a fresh
// temp directory, returning that directory. Completes the stub noted in
// spec.md §9.
func fetchOci(ctx context.Context, source *repository.ResolvedSource) (*Result, error) {
	tag := source.Tag
	if tag == "" {
		tag = "latest"
	}
	ref := fmt.Sprintf("%s:%s", source.Url, tag)

	img, err := crane.Pull(ref, crane.WithContext(ctx))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.OciError, "pull "+ref)
	}

	dir, err := os.MkdirTemp("", "pulumi-stack-oci-*")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.OciError, "create temp dir")
	}

	if err := extractLayers(img, dir); err != nil {
		return nil, apperrors.Wrap(err, apperrors.OciError, "extract "+ref)
	}

	return &Result{Dir: dir}, nil
}

func extractLayers(img v1.Image, dir string) error {
	layers, err := img.Layers()
	if err != nil {
		return err
	}
	for _, layer := range layers {
		rc, err := layer.Uncompressed()
		if err != nil {
			return err
		}
		if err := extractTar(rc, dir); err != nil {
			rc.Close()
			return err
		}
		rc.Close()
	}
	return nil
}

// extractTar writes every regular file and directory in r into dest.
// Entry names are joined with securejoin.SecureJoin, which clamps
// path-traversal segments ("../") to dest instead of rejecting them, so
// every extracted entry lands inside dest.
func extractTar(r io.Reader, dest string) error {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := securejoin.SecureJoin(dest, hdr.Name)
		if err != nil {
			return apperrors.Newf(apperrors.OciError, "layer entry %q escapes extraction directory", hdr.Name)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(hdr.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return err
			}
			f.Close()
		}
	}
}
