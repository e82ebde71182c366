// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/dharohar-project/dharohar/internal/models"
	"github.com/dharohar-project/dharohar/internal/validation"
)

// LoadSites reads the heritage site dataset from a JSON array file.
//
// Every record is validated before the slice is returned. Sites without
// an explicit ID get one derived from their name, and duplicate IDs are
// rejected so that lookups stay unambiguous.
func LoadSites(path string) ([]models.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}

	var sites []models.Site
	if err := json.Unmarshal(data, &sites); err != nil {
		return nil, fmt.Errorf("failed to parse sites file %s: %w", path, err)
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("sites file %s contains no records", path)
	}

	seen := make(map[string]string, len(sites))
	for i := range sites {
		if sites[i].ID == "" {
			sites[i].ID = Slugify(sites[i].Name)
		}
		if verr := validation.ValidateStruct(&sites[i]); verr != nil {
			return nil, fmt.Errorf("invalid site at index %d (%q): %w", i, sites[i].Name, verr)
		}
		if prev, dup := seen[sites[i].ID]; dup {
			return nil, fmt.Errorf("duplicate site id %q (%q and %q)", sites[i].ID, prev, sites[i].Name)
		}
		seen[sites[i].ID] = sites[i].Name
	}
	return sites, nil
}

// LoadArtForms reads the art form dataset from a CSV file.
func LoadArtForms(path string) ([]models.ArtForm, error) {
	rows, get, err := openCSV(path,
		"state", "art_form", "type", "latitude", "longitude",
		"visitors_annual", "cultural_significance")
	if err != nil {
		return nil, err
	}
	defer rows.close()

	var forms []models.ArtForm
	for {
		row, err := rows.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s row %d: %w", path, rows.line, err)
		}

		form := models.ArtForm{
			State:                get(row, "state"),
			Name:                 get(row, "art_form"),
			Type:                 get(row, "type"),
			Description:          get(row, "description"),
			CulturalSignificance: get(row, "cultural_significance"),
		}
		if form.Latitude, err = parseFloat(get(row, "latitude")); err != nil {
			return nil, rowErr(path, rows.line, "latitude", err)
		}
		if form.Longitude, err = parseFloat(get(row, "longitude")); err != nil {
			return nil, rowErr(path, rows.line, "longitude", err)
		}
		if form.AnnualVisitors, err = parseInt(get(row, "visitors_annual")); err != nil {
			return nil, rowErr(path, rows.line, "visitors_annual", err)
		}
		if verr := validation.ValidateStruct(&form); verr != nil {
			return nil, fmt.Errorf("invalid art form in %s row %d (%q): %w", path, rows.line, form.Name, verr)
		}
		forms = append(forms, form)
	}
	if len(forms) == 0 {
		return nil, fmt.Errorf("art forms file %s contains no records", path)
	}
	return forms, nil
}

// LoadGems reads the hidden gem dataset from a CSV file.
func LoadGems(path string) ([]models.HiddenGem, error) {
	rows, get, err := openCSV(path,
		"name", "state", "latitude", "longitude",
		"visitors_annual", "accessibility")
	if err != nil {
		return nil, err
	}
	defer rows.close()

	var gems []models.HiddenGem
	for {
		row, err := rows.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s row %d: %w", path, rows.line, err)
		}

		gem := models.HiddenGem{
			Name:            get(row, "name"),
			State:           get(row, "state"),
			ArtForm:         get(row, "art_form"),
			Description:     get(row, "description"),
			Accessibility:   get(row, "accessibility"),
			BestTimeToVisit: get(row, "best_time_to_visit"),
		}
		if gem.Latitude, err = parseFloat(get(row, "latitude")); err != nil {
			return nil, rowErr(path, rows.line, "latitude", err)
		}
		if gem.Longitude, err = parseFloat(get(row, "longitude")); err != nil {
			return nil, rowErr(path, rows.line, "longitude", err)
		}
		if gem.AnnualVisitors, err = parseInt(get(row, "visitors_annual")); err != nil {
			return nil, rowErr(path, rows.line, "visitors_annual", err)
		}
		if verr := validation.ValidateStruct(&gem); verr != nil {
			return nil, fmt.Errorf("invalid gem in %s row %d (%q): %w", path, rows.line, gem.Name, verr)
		}
		gems = append(gems, gem)
	}
	if len(gems) == 0 {
		return nil, fmt.Errorf("gems file %s contains no records", path)
	}
	return gems, nil
}

// LoadInitiatives reads the preservation initiative dataset from a CSV file.
func LoadInitiatives(path string) ([]models.Initiative, error) {
	rows, get, err := openCSV(path,
		"initiative_name", "state", "focus_area",
		"impact_score", "year_started", "beneficiaries_thousands")
	if err != nil {
		return nil, err
	}
	defer rows.close()

	var initiatives []models.Initiative
	for {
		row, err := rows.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s row %d: %w", path, rows.line, err)
		}

		ini := models.Initiative{
			Name:        get(row, "initiative_name"),
			State:       get(row, "state"),
			FocusArea:   get(row, "focus_area"),
			Description: get(row, "description"),
			Website:     get(row, "website"),
		}
		if ini.ImpactScore, err = parseFloat(get(row, "impact_score")); err != nil {
			return nil, rowErr(path, rows.line, "impact_score", err)
		}
		if ini.YearStarted, err = parseInt(get(row, "year_started")); err != nil {
			return nil, rowErr(path, rows.line, "year_started", err)
		}
		if ini.Beneficiaries, err = parseInt(get(row, "beneficiaries_thousands")); err != nil {
			return nil, rowErr(path, rows.line, "beneficiaries_thousands", err)
		}
		if verr := validation.ValidateStruct(&ini); verr != nil {
			return nil, fmt.Errorf("invalid initiative in %s row %d (%q): %w", path, rows.line, ini.Name, verr)
		}
		initiatives = append(initiatives, ini)
	}
	if len(initiatives) == 0 {
		return nil, fmt.Errorf("initiatives file %s contains no records", path)
	}
	return initiatives, nil
}

// ============================================================================
// CSV plumbing
// ============================================================================

// csvRows wraps a CSV reader with line tracking so loader errors can
// point at the offending row.
type csvRows struct {
	f    *os.File
	r    *csv.Reader
	line int
}

func (c *csvRows) next() ([]string, error) {
	row, err := c.r.Read()
	if err == nil {
		c.line++
	}
	return row, err
}

func (c *csvRows) close() {
	_ = c.f.Close()
}

// getFunc returns the trimmed value of a named column in a row, or ""
// when the column is absent. Lookups are by header name so column order
// in the source file does not matter.
type getFunc func(row []string, col string) string

// openCSV opens a CSV file, reads its header row, and verifies that all
// required columns are present. The first header cell is stripped of a
// UTF-8 byte order mark if one is present, which spreadsheet exports
// routinely prepend.
func openCSV(path string, required ...string) (*csvRows, getFunc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to read %s header: %w", path, err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\xef\xbb\xbf")
	}

	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			_ = f.Close()
			return nil, nil, fmt.Errorf("%s is missing required column %q", path, col)
		}
	}

	get := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	return &csvRows{f: f, r: r, line: 1}, get, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func rowErr(path string, line int, col string, err error) error {
	return fmt.Errorf("invalid %s in %s row %d: %w", col, path, line, err)
}

// Slugify derives a URL-safe identifier from a display name: lowercase,
// with runs of non-alphanumeric characters collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
