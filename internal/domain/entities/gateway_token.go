package entities

import "time"

// GatewayOrigin identifies the external payment provider a cached
// credential belongs to.

type GatewayOrigin string

const (
	GatewayOriginQPay GatewayOrigin = "qpay"
)

// GatewayToken is the cached bearer credential for one gateway
// origin. A single row per origin is overwritten on every refresh;
// it is deliberately not versioned against Invoice, since staleness
// is tolerated by re-authenticating on demand.
//
// Storage model (DynamoDB):
//   - PK: origin

type GatewayToken struct {
	Origin      GatewayOrigin `json:"origin"`
	Token       string        `json:"token"`
	RefreshedAt time.Time     `json:"refreshed_at"`
}
