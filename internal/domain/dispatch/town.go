package dispatch

import (
	"strings"

	"solar-dispatch/internal/pkg/errs"
)

var ErrUnknownTown = errs.Mark(errs.New("unknown town"), errs.ErrValidation)

type Town string

// gazetteer is scanned in this order, so an address naming two towns resolves
// to the one listed first.
var gazetteer = []Town{
	"舞泉镇",
	"吴城镇",
	"北舞渡镇",
	"莲花镇",
	"辛安镇",
	"孟寨镇",
	"太尉镇",
	"侯集镇",
	"九街镇",
	"文峰乡",
	"保和乡",
	"马村乡",
	"章化乡",
	"姜店乡",
}

type alias struct {
	short string
	town  Town
}

// aliases is consulted only when no full town name matches. Longer forms come
// before their prefixes.
var aliases = []alias{
	{"舞泉", "舞泉镇"},
	{"吴城", "吴城镇"},
	{"北舞渡", "北舞渡镇"},
	{"北舞", "北舞渡镇"},
	{"莲花", "莲花镇"},
	{"辛安", "辛安镇"},
	{"孟寨", "孟寨镇"},
	{"太尉", "太尉镇"},
	{"侯集", "侯集镇"},
	{"九街", "九街镇"},
	{"文峰", "文峰乡"},
	{"保和", "保和乡"},
	{"马村", "马村乡"},
	{"章化", "章化乡"},
	{"姜店", "姜店乡"},
}

// Towns returns the gazetteer in scan order.
func Towns() []Town {
	return append([]Town(nil), gazetteer...)
}

// DeriveTown infers the town an address belongs to. It depends on nothing but
// the address, so repeated calls always agree.
func DeriveTown(address string) (Town, bool) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", false
	}
	for _, t := range gazetteer {
		if strings.Contains(address, string(t)) {
			return t, true
		}
	}
	for _, a := range aliases {
		if strings.Contains(address, a.short) {
			return a.town, true
		}
	}
	return "", false
}

// ParseTown accepts a full town name or one of its aliases.
func ParseTown(s string) (Town, error) {
	s = strings.TrimSpace(s)
	for _, t := range gazetteer {
		if s == string(t) {
			return t, nil
		}
	}
	for _, a := range aliases {
		if s == a.short {
			return a.town, nil
		}
	}
	return "", errs.Wrapf(ErrUnknownTown, "town %q", s)
}
