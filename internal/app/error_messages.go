// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

// Package app contains shared application-layer constants used across the
// key server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONProvided is returned when a JSON request body cannot be
	// decoded.
	MsgInvalidJSONProvided = "Invalid JSON was passed"

	// MsgInvalidXMLProvided is returned when an XML request body cannot be
	// parsed into a document element.
	MsgInvalidXMLProvided = "invalid XML was passed"

	// MsgInvalidJIDPassword is returned when the supplied JID/password
	// combination does not match any publisher account. The same message is
	// used for unknown JIDs and wrong passwords.
	MsgInvalidJIDPassword = "invalid jid/password"

	// MsgBodyIsNotDeviceList is returned when a device-list upload carries a
	// well-formed XML document whose root is not a device list.
	MsgBodyIsNotDeviceList = "body is not a device list"

	// MsgBodyIsNotDeviceBundle is returned when a bundle upload carries a
	// well-formed XML document whose root is not a device bundle.
	MsgBodyIsNotDeviceBundle = "body is not a device bundle"

	// MsgBodyIsNotServicesDocument is returned when a services upload carries
	// a well-formed XML document whose root is not a services element.
	MsgBodyIsNotServicesDocument = "body is not a services document"

	// MsgRequestTimedOut is returned when an inbound request exceeds the
	// configured server request timeout.
	MsgRequestTimedOut = "request timed out"
)
