// Package services contains stateless domain services that implement
// business policies spanning no single aggregate, such as the tolerant
// delivery-code matching policy.
package services
