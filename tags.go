/*
 * tags.go, part of gofeff.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gofeff is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package feff

import (
	"regexp"
	"sort"
	"strings"
)

//Tags is the block of control parameters of a feff.inp file: a mapping
//from tag name to typed Value that remembers insertion order. It is not
//safe for concurrent mutation; every call on distinct Tags instances is
//independent.
type Tags struct {
	order []string
	data  map[string]*Value
}

//NewTags returns an empty tag block.
func NewTags() *Tags {
	return &Tags{data: make(map[string]*Value)}
}

//Len returns the number of tags stored.
func (T *Tags) Len() int {
	return len(T.order)
}

//Set coerces value according to the tag class of name and stores it
//under the trimmed name. An empty or blank name is a critical error. A
//name outside the recognized vocabulary is stored anyway, and reported
//with a non-critical warning (Critical() == false): FEFF itself may
//know tags this library does not.
func (T *Tags) Set(name, value string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return newError(ErrValidation, true, "A tag needs a non-blank name")
	}
	v, err := Coerce(name, value)
	if err != nil {
		return errDecorate(err, "Set")
	}
	return T.SetValue(name, v)
}

//SetValue stores an already-typed value under the trimmed name. Same
//naming rules and unknown-tag warning as Set.
func (T *Tags) SetValue(name string, v *Value) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return newError(ErrValidation, true, "A tag needs a non-blank name")
	}
	if v == nil {
		return newError(ErrValidation, true, "Tag %s given a nil value", name)
	}
	if _, ok := T.data[name]; !ok {
		T.order = append(T.order, name)
	}
	T.data[name] = v
	if !validFeffTags[normalizeTag(name)] {
		return newError(ErrUnknownTag, false, "%s not in the list of recognized FEFF tags", name)
	}
	return nil
}

//Get returns the value stored under name (exact match on the trimmed
//stored name) and whether it was present.
func (T *Tags) Get(name string) (*Value, bool) {
	v, ok := T.data[name]
	return v, ok
}

//Contains returns whether a tag with the given name is stored.
func (T *Tags) Contains(name string) bool {
	_, ok := T.data[name]
	return ok
}

//Keys returns the tag names in insertion order.
func (T *Tags) Keys() []string {
	ret := make([]string, len(T.order))
	copy(ret, T.order)
	return ret
}

//Format serializes the block, one tag per line. With sortKeys the tags
//come out alphabetically instead of in insertion order. With pretty the
//two columns are aligned; otherwise name and value are joined by two
//spaces.
func (T *Tags) Format(sortKeys, pretty bool) string {
	keys := T.Keys()
	if sortKeys {
		sort.Strings(keys)
	}
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, T.data[k].String()})
	}
	if pretty {
		return tabulate(nil, rows)
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row[0]+"  "+row[1])
	}
	return strings.Join(lines, "\n")
}

func (T *Tags) String() string {
	return T.Format(false, true)
}

//WriteFile writes the block to a PARAMETERS-style file.
func (T *Tags) WriteFile(path string) error {
	return writeString(path, T.String())
}

//A tag line starts with upper-case letters, optionally followed by
//digits; the rest of the line is the raw value.
var tagLine = regexp.MustCompile(`^([A-Z]+\d*)\s*(.*)`)

//The four markers that open other sections of a feff.inp document.
//Lines keyed by them belong to those sections, not to the tag block.
var sectionMarkers = map[string]bool{
	"ATOMS": true, "POTENTIALS": true, "END": true, "TITLE": true,
}

//TagsFromString reads a tag block from the text of a PARAMETERS or
//feff.inp document. Blank lines, lines that do not look like tag lines
//and the ATOMS/POTENTIALS/END/TITLE sections are skipped. Unknown tags
//are stored without complaint; reading foreign documents is the whole
//point of this function.
func TagsFromString(s string) (*Tags, error) {
	tags := NewTags()
	for _, line := range cleanLines(strings.Split(s, "\n"), true) {
		m := tagLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := strings.TrimSpace(m[1])
		if sectionMarkers[key] {
			continue
		}
		v, err := Coerce(key, strings.TrimSpace(m[2]))
		if err != nil {
			return nil, errDecorate(err, "TagsFromString")
		}
		if err := tags.SetValue(key, v); err != nil && err.(Error).Critical() {
			return nil, errDecorate(err, "TagsFromString")
		}
	}
	return tags, nil
}

//TagsFromFile reads a tag block from a PARAMETERS or feff.inp file,
//which may be gzip-compressed.
func TagsFromFile(path string) (*Tags, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	return TagsFromString(strings.Join(lines, "\n"))
}

//TagPair is one side-by-side entry of a diff. A nil member means the
//tag is absent from that side, so the program default applies.
type TagPair struct {
	First  *Value
	Second *Value
}

//DefaultSentinel stands, in a rendered diff, for a tag absent from one
//of the two blocks.
const DefaultSentinel = "Default"

//Describe renders both sides of the pair, with absent sides as the
//Default sentinel.
func (p TagPair) Describe() (string, string) {
	first, second := DefaultSentinel, DefaultSentinel
	if p.First != nil {
		first = p.First.String()
	}
	if p.Second != nil {
		second = p.Second.String()
	}
	return first, second
}

//TagDiff is the result of comparing two tag blocks.
type TagDiff struct {
	Same      map[string]*Value
	Different map[string]TagPair
}

//Diff compares two tag blocks, useful to check whether two runs used
//the same parameters. Tags present in both blocks with equal values end
//up in Same; everything else, including tags present on only one side,
//ends up in Different.
func (T *Tags) Diff(other *Tags) *TagDiff {
	d := &TagDiff{
		Same:      make(map[string]*Value),
		Different: make(map[string]TagPair),
	}
	for _, k := range T.order {
		v1 := T.data[k]
		v2, ok := other.data[k]
		switch {
		case !ok:
			d.Different[k] = TagPair{First: v1}
		case !v1.Equal(v2):
			d.Different[k] = TagPair{First: v1, Second: v2}
		default:
			d.Same[k] = v1
		}
	}
	for _, k := range other.order {
		if _, ok := d.Same[k]; ok {
			continue
		}
		if _, ok := d.Different[k]; ok {
			continue
		}
		d.Different[k] = TagPair{Second: other.data[k]}
	}
	return d
}

//Merge combines two tag blocks into a new one, to layer a set of
//"standard" tags under or over specific ones. A tag present in both
//blocks with different values is a conflict and aborts the merge with a
//critical error; neither input is modified.
func (T *Tags) Merge(other *Tags) (*Tags, error) {
	merged := NewTags()
	for _, k := range T.order {
		merged.SetValue(k, T.data[k]) //unknown-tag warnings were already given on the original Set
	}
	for _, k := range other.order {
		v := other.data[k]
		if mine, ok := T.data[k]; ok && !mine.Equal(v) {
			return nil, newError(ErrConflict, true, "Tag blocks have conflicting values for %s: %s vs %s", k, mine.String(), v.String())
		}
		merged.SetValue(k, v)
	}
	return merged, nil
}
