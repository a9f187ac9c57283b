package dataapi

import (
	"encoding/json"
	"fmt"
)

// PageResult is a page of elements with server-side pagination metadata.
//
// The wire format is the canonical {content, pageNumber, pageSize,
// totalElements, totalPages, first, last, empty} object. Some DataAPI
// deployments name the page fields "number" and "size" instead; both
// spellings are accepted on read, and the canonical names are emitted on
// write.
type PageResult[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
	Empty         bool
}

type pageResultWire[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    *int  `json:"pageNumber,omitempty"`
	Number        *int  `json:"number,omitempty"`
	PageSize      *int  `json:"pageSize,omitempty"`
	Size          *int  `json:"size,omitempty"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         *bool `json:"empty,omitempty"`
}

// MarshalJSON emits the canonical field names.
func (p PageResult[T]) MarshalJSON() ([]byte, error) {
	content := p.Content
	if content == nil {
		content = []T{}
	}

	empty := p.Empty

	data, err := json.Marshal(pageResultWire[T]{
		Content:       content,
		PageNumber:    &p.PageNumber,
		PageSize:      &p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
		Empty:         &empty,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling page result: %w", err)
	}

	return data, nil
}

// UnmarshalJSON accepts both canonical and short page field spellings.
func (p *PageResult[T]) UnmarshalJSON(data []byte) error {
	var wire pageResultWire[T]

	err := json.Unmarshal(data, &wire)
	if err != nil {
		return fmt.Errorf("unmarshaling page result: %w", err)
	}

	p.Content = wire.Content
	p.TotalElements = wire.TotalElements
	p.TotalPages = wire.TotalPages
	p.First = wire.First
	p.Last = wire.Last

	switch {
	case wire.PageNumber != nil:
		p.PageNumber = *wire.PageNumber
	case wire.Number != nil:
		p.PageNumber = *wire.Number
	}

	switch {
	case wire.PageSize != nil:
		p.PageSize = *wire.PageSize
	case wire.Size != nil:
		p.PageSize = *wire.Size
	}

	if wire.Empty != nil {
		p.Empty = *wire.Empty
	} else {
		p.Empty = len(wire.Content) == 0
	}

	return nil
}

// APIVersion is the /version response.
type APIVersion struct {
	Version   string `json:"version"   yaml:"version"`
	BuildTime string `json:"buildTime" yaml:"buildTime"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
}

// HealthStatus is the /health response.
type HealthStatus struct {
	Status  string            `json:"status"            yaml:"status"`
	Message string            `json:"message"           yaml:"message"`
	Details map[string]string `json:"details,omitempty" yaml:"details,omitempty"`
}

// ErrorResponse is the JSON body DataAPI attaches to error statuses. The
// engine preserves code and message in the returned *Error but does not
// depend on them being present.
type ErrorResponse struct {
	Code      string                 `json:"code"                yaml:"code"`
	Message   string                 `json:"message"             yaml:"message"`
	Details   map[string]interface{} `json:"details,omitempty"   yaml:"details,omitempty"`
	Timestamp string                 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}
