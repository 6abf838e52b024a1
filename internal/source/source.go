// SPDX-License-Identifier: MIT

// Package source reads the matrix handed to the matinv command, either from
// an inline literal ("2,0;0,2") or from a YAML document.
package source

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcache/matrix"
)

// ErrEmpty is returned when neither an inline literal nor a file yields rows.
var ErrEmpty = errors.New("source: no matrix given")

// Document is the YAML shape accepted by Load.
//
//	matrix:
//	  - [2, 0]
//	  - [0, 2]
//	tolerance: 1e-12
//	pivoting: true
type Document struct {
	Matrix    [][]float64 `yaml:"matrix"`
	Tolerance *float64    `yaml:"tolerance,omitempty"`
	Pivoting  *bool       `yaml:"pivoting,omitempty"`
}

// Options converts the optional solver settings into inversion options.
// Unset fields leave the matrix package defaults in place.
func (d Document) Options() ([]matrix.InverseOption, error) {
	var opts []matrix.InverseOption
	if d.Tolerance != nil {
		if tol := *d.Tolerance; tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return nil, fmt.Errorf("source: tolerance %g must be finite and non-negative", tol)
		}
		opts = append(opts, matrix.WithPivotTolerance(*d.Tolerance))
	}
	if d.Pivoting != nil {
		if *d.Pivoting {
			opts = append(opts, matrix.WithPartialPivoting())
		} else {
			opts = append(opts, matrix.WithoutPivoting())
		}
	}

	return opts, nil
}

// Dense builds the matrix described by the document.
func (d Document) Dense() (*matrix.Dense, error) {
	if len(d.Matrix) == 0 {
		return nil, ErrEmpty
	}
	m, err := matrix.NewDenseFrom(d.Matrix)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	return m, nil
}

// Load reads a YAML Document from path.
func Load(path string) (Document, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	var doc Document
	if err := yaml.Unmarshal(bytes, &doc); err != nil {
		return Document{}, fmt.Errorf("source: %s: %w", path, err)
	}
	log.Debugf("loaded matrix document: %s", path)

	return doc, nil
}

// Parse reads an inline literal: rows separated by ';', cells by ',' or
// whitespace. "1,2;3,4" is [[1 2] [3 4]].
func Parse(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}

	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			return nil, fmt.Errorf("source: row %d is empty", i)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("source: row %d col %d: %w", i, j, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}
