package terrain

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cheggaaa/pb"
	"golang.org/x/sync/errgroup"

	"github.com/ashesandaether/worldbuilder/geo"
)

const (
	ProductsURL    = "https://tnmaccess.nationalmap.gov/api/v1/products"
	DefaultDataset = "National Elevation Dataset (NED) 1/3 arc-second"

	pageSize          = 200
	downloadWorkers   = 3
	downloadRetries   = 3
	downloadRetryWait = 10 * time.Second
)

// Product is one downloadable item from the TNM products API.
type Product struct {
	Title       string `json:"title"`
	DownloadURL string `json:"downloadURL"`
	Format      string `json:"format"`
}

type productPage struct {
	Items []Product `json:"items"`
}

// TileIndex records what a fetch downloaded, written alongside the
// tiles as index.json.
type TileIndex struct {
	Dataset   string     `json:"dataset"`
	Center    geo.Point  `json:"center"`
	BBox      string     `json:"bbox"`
	Downloads []Download `json:"downloads"`
}

type Download struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Path  string `json:"path"`
}

// Products pages through the TNM API and returns every product
// covering the bounding box.
func Products(dataset, bbox string) ([]Product, error) {
	items := []Product{}
	offset := 0

	for {
		page, err := fetchPage(dataset, bbox, offset)
		if err != nil {
			return nil, err
		}
		if len(page.Items) == 0 {
			break
		}

		items = append(items, page.Items...)
		offset += len(page.Items)
		if len(page.Items) < pageSize {
			break
		}
	}

	return items, nil
}

func fetchPage(dataset, bbox string, offset int) (*productPage, error) {
	params := url.Values{}
	params.Set("datasets", dataset)
	params.Set("bbox", bbox)
	params.Set("max", strconv.Itoa(pageSize))
	params.Set("offset", strconv.Itoa(offset))

	var page *productPage
	op := func() error {
		resp, err := http.Get(ProductsURL + "?" + params.Encode())
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			return fmt.Errorf("Unexpected status code: %d", resp.StatusCode)
		}

		data, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		p := &productPage{}
		err = json.Unmarshal(data, p)
		if err != nil {
			return backoff.Permanent(err)
		}
		page = p
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(downloadRetryWait), downloadRetries)
	err := backoff.Retry(op, policy)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// FetchTiles downloads every GeoTIFF product around center into outDir
// and writes an index of what landed. Already-present files are
// skipped, so an interrupted fetch can simply be rerun.
func FetchTiles(center geo.Point, radiusMeters float64, dataset, outDir string) (*TileIndex, error) {
	bbox := BBoxParam(center, radiusMeters)
	products, err := Products(dataset, bbox)
	if err != nil {
		return nil, err
	}

	tiffs := []Product{}
	for _, p := range products {
		u := strings.ToLower(p.DownloadURL)
		if p.DownloadURL == "" || (!strings.HasSuffix(u, ".tif") && !strings.HasSuffix(u, ".tiff")) {
			continue
		}
		tiffs = append(tiffs, p)
	}
	log.Printf("Found %d elevation tiles", len(tiffs))

	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return nil, err
	}

	index := &TileIndex{
		Dataset:   dataset,
		Center:    center,
		BBox:      bbox,
		Downloads: make([]Download, len(tiffs)),
	}

	bar := pb.StartNew(len(tiffs))
	g := &errgroup.Group{}
	g.SetLimit(downloadWorkers)

	for i, p := range tiffs {
		i, p := i, p
		g.Go(func() error {
			dest := path.Join(outDir, SanitizeFilename(p.Title)+".tif")
			err := downloadFile(p.DownloadURL, dest)
			if err != nil {
				return fmt.Errorf("Failed to download %s: %s", p.DownloadURL, err.Error())
			}
			index.Downloads[i] = Download{Title: p.Title, URL: p.DownloadURL, Path: dest}
			bar.Increment()
			return nil
		})
	}

	err = g.Wait()
	bar.Finish()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, err
	}
	err = ioutil.WriteFile(path.Join(outDir, "index.json"), data, 0644)
	if err != nil {
		return nil, err
	}

	return index, nil
}

func downloadFile(rawurl, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return nil
	}

	op := func() error {
		resp, err := http.Get(rawurl)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			return fmt.Errorf("Unexpected status code: %d", resp.StatusCode)
		}

		tmp, err := os.Create(dest + ".partial")
		if err != nil {
			return backoff.Permanent(err)
		}

		_, err = io.Copy(tmp, resp.Body)
		tmp.Close()
		if err != nil {
			os.Remove(dest + ".partial")
			return err
		}

		return os.Rename(dest+".partial", dest)
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(downloadRetryWait), downloadRetries)
	return backoff.Retry(op, policy)
}

// SanitizeFilename keeps product titles filesystem-safe.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
