// Package domain contains the core entities of the lending service: catalog
// items, current loans, orders and late fees. The types carry no persistence or
// transport concerns so they can be shared by the rule engine, the storage
// layer and the API.
package domain
