// This file is part of Imager.
//
// Imager is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Imager is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Imager.  If not, see <https://www.gnu.org/licenses/>.

package imageloader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jetsetilly/imager/archivefs"
	"github.com/jetsetilly/imager/curated"
)

// Sentinal error pattern returned by Fetch() when a network source is larger
// than the Fetcher allows.
const (
	TooLarge = "imageloader: %s: larger than %d bytes"
)

// Data is the raw data for an image. Close() must be called once the data is
// no longer required.
type Data struct {
	Bytes []byte

	// release resources. may be nil
	release func() error
}

// Close releases any resources used by the data.
func (d *Data) Close() error {
	if d.release == nil {
		return nil
	}
	err := d.release()
	d.release = nil
	d.Bytes = nil
	return err
}

// Source implementations fetch the raw data for an identifier.
type Source interface {
	Fetch(identifier string) (*Data, error)
}

// Fetcher is the default implementation of Source.
type Fetcher struct {
	Client *http.Client

	// maximum number of bytes read from a network source
	MaxSize int64
}

// NewFetcher is the preferred method of initialisation for the Fetcher type.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		MaxSize: 256 * 1024 * 1024,
	}
}

// Fetch implements the Source interface. An identifier that names a file on
// the local filesystem is always treated as a file, even if it looks like a
// URL. Otherwise http and https URLs are requested from the network and all
// other identifiers are assumed to be paths into an archive.
func (f *Fetcher) Fetch(identifier string) (*Data, error) {
	if fi, err := os.Stat(identifier); err == nil && fi.Mode().IsRegular() {
		return mapFile(identifier)
	}

	if archivefs.IsURL(identifier) {
		return f.get(identifier)
	}

	b, err := archivefs.ReadFile(identifier)
	if err != nil {
		return nil, err
	}
	return &Data{Bytes: b}, nil
}

func (f *Fetcher) get(url string) (*Data, error) {
	resp, err := f.Client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status %s", resp.Status)
	}

	// reading one byte more than the limit distinguishes a body that is
	// exactly the maximum size from one that is larger
	b, err := io.ReadAll(io.LimitReader(resp.Body, f.MaxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > f.MaxSize {
		return nil, curated.Errorf(TooLarge, url, f.MaxSize)
	}

	return &Data{Bytes: b}, nil
}
