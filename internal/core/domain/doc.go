// Package domain contains the core business entities for docq.
// These types have no dependencies on infrastructure concerns.
package domain
