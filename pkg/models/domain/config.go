package domain

import (
	"fmt"
	"time"
)

// APIProfile describes one reporting API endpoint the pipeline can read from.
type APIProfile struct {
	Name    string
	BaseURL string
	Token   string
	Timeout time.Duration
}

func (c APIProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.BaseURL)
}
