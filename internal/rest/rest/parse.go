package rest

import (
	"strconv"

	"github.com/meetmux/api/data/structures"
	"github.com/seventv/common/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Param struct {
	v interface{}
}

func (c *Ctx) UserValue(key Key) *Param {
	return &Param{c.RequestCtx.UserValue(string(key))}
}

// QueryValue reads a query argument
func (c *Ctx) QueryValue(key string) *Param {
	v := string(c.QueryArgs().Peek(key))
	if v == "" {
		return &Param{nil}
	}

	return &Param{v}
}

// String returns a string value of the param
func (p *Param) String() (string, bool) {
	if p.v == nil {
		return "", false
	}
	var s string
	switch t := p.v.(type) {
	case string:
		s = t
	default:
		return "", false
	}

	return s, true
}

// Int32 parses the param into an int32
func (p *Param) Int32() (int32, error) {
	s, ok := p.String()
	if !ok {
		return 0, errors.ErrEmptyField()
	}

	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.ErrBadInt().SetDetail(err.Error())
	}
	return int32(i), nil
}

// Float64 parses the param into a float64. Malformed numbers report as
// absent rather than erroring.
func (p *Param) Float64() (float64, bool) {
	s, ok := p.String()
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// Bool parses the param into a bool, defaulting to false
func (p *Param) Bool() bool {
	s, _ := p.String()

	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}

	return b
}

// ObjectID parses the param into an Object ID
func (p *Param) ObjectID() (primitive.ObjectID, error) {
	s, _ := p.String()
	if s == "" || !primitive.IsValidObjectID(s) {
		return primitive.NilObjectID, errors.ErrBadObjectID()
	}

	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, errors.ErrBadObjectID().SetDetail(err.Error())
	}
	return oid, nil
}

func (p *Param) User() *structures.User {
	var u *structures.User
	switch t := p.v.(type) {
	case *structures.User:
		u = t
	default:
		return nil
	}
	return u
}
