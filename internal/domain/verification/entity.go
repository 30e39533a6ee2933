package verification

import (
	"sort"
	"time"

	"solar-dispatch/internal/domain/customer"

	"github.com/google/uuid"
)

// DefaultTTL is how long a freshly issued code stays usable.
const DefaultTTL = 24 * time.Hour

// Code is a single-use dispatch token.
type Code struct {
	id              uuid.UUID
	code            string
	issuedBy        uuid.UUID
	blockedSalesmen []string
	createdAt       time.Time
	expiresAt       time.Time
	used            bool
	usedBy          *uuid.UUID
	usedAt          *time.Time
	reservedBy      *uuid.UUID
	reservedUntil   *time.Time
}

func NewCode(code string, issuedBy uuid.UUID, blockedSalesmen []string, now time.Time, ttl time.Duration) (*Code, error) {
	if err := ValidateFormat(code); err != nil {
		return nil, err
	}
	if issuedBy == uuid.Nil {
		return nil, ErrIssuerRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Code{
		id:              uuid.New(),
		code:            code,
		issuedBy:        issuedBy,
		blockedSalesmen: customer.NormalizeSalesmen(blockedSalesmen),
		createdAt:       now,
		expiresAt:       now.Add(ttl),
	}, nil
}

type Params struct {
	ID              uuid.UUID
	Code            string
	IssuedBy        uuid.UUID
	BlockedSalesmen []string
	CreatedAt       time.Time
	ExpiresAt       time.Time
	Used            bool
	UsedBy          *uuid.UUID
	UsedAt          *time.Time
	ReservedBy      *uuid.UUID
	ReservedUntil   *time.Time
}

func Reconstruct(p Params) *Code {
	return &Code{
		id:              p.ID,
		code:            p.Code,
		issuedBy:        p.IssuedBy,
		blockedSalesmen: append([]string(nil), p.BlockedSalesmen...),
		createdAt:       p.CreatedAt,
		expiresAt:       p.ExpiresAt,
		used:            p.Used,
		usedBy:          p.UsedBy,
		usedAt:          p.UsedAt,
		reservedBy:      p.ReservedBy,
		reservedUntil:   p.ReservedUntil,
	}
}

func (c *Code) ID() uuid.UUID             { return c.id }
func (c *Code) Code() string              { return c.code }
func (c *Code) IssuedBy() uuid.UUID       { return c.issuedBy }
func (c *Code) CreatedAt() time.Time      { return c.createdAt }
func (c *Code) ExpiresAt() time.Time      { return c.expiresAt }
func (c *Code) Used() bool                { return c.used }
func (c *Code) UsedBy() *uuid.UUID        { return c.usedBy }
func (c *Code) UsedAt() *time.Time        { return c.usedAt }
func (c *Code) ReservedBy() *uuid.UUID    { return c.reservedBy }
func (c *Code) ReservedUntil() *time.Time { return c.reservedUntil }

func (c *Code) BlockedSalesmen() []string {
	return append([]string(nil), c.blockedSalesmen...)
}

// IsExpired compares now against expiresAt; the expiry instant itself is still valid.
func (c *Code) IsExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

func (c *Code) IsActive(now time.Time) bool {
	return !c.used && !c.IsExpired(now)
}

// IsReserved reports whether a live reservation is held, whoever holds it.
func (c *Code) IsReserved(now time.Time) bool {
	return c.reservedUntil != nil && now.Before(*c.reservedUntil)
}

// Status is the dashboard label for a code.
func (c *Code) Status(now time.Time) Status {
	switch {
	case c.used:
		return StatusUsed
	case c.IsExpired(now):
		return StatusExpired
	case c.reservedUntil != nil && now.Before(*c.reservedUntil):
		return StatusReserved
	default:
		return StatusActive
	}
}

type Status string

const (
	StatusActive   Status = "active"
	StatusReserved Status = "reserved"
	StatusUsed     Status = "used"
	StatusExpired  Status = "expired"
)

// Reason values are shown to the user verbatim.
type Reason string

const (
	ReasonNotFound    Reason = "not found"
	ReasonExpired     Reason = "expired"
	ReasonAlreadyUsed Reason = "already used"
)

type Resolution struct {
	Valid  bool
	Code   *Code
	Reason Reason
}

// Resolve picks the record a typed string refers to. Several records can share
// a string over time; any active one wins (newest first), otherwise the newest
// record explains why the string is unusable.
func Resolve(codes []*Code, now time.Time) Resolution {
	if len(codes) == 0 {
		return Resolution{Reason: ReasonNotFound}
	}
	sorted := append([]*Code(nil), codes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].createdAt.After(sorted[j].createdAt)
	})
	for _, c := range sorted {
		if c.IsActive(now) {
			return Resolution{Valid: true, Code: c}
		}
	}
	latest := sorted[0]
	if latest.used {
		return Resolution{Code: latest, Reason: ReasonAlreadyUsed}
	}
	return Resolution{Code: latest, Reason: ReasonExpired}
}
