// Package kube converts between exact values and Kubernetes resource
// quantities ("1500m", "3k", "2Gi").
//
// ToExact never loses precision. FromExact refuses values a
// resource.Quantity would round: anything finer than 10^-9 or larger in
// magnitude than 2^63-1.
package kube
