package vocab

// Closed-day tokens per language, matched case-insensitively both inside the
// closed-day grammar and as AddRange open/close values.

// ClosedAT lists Austrian German closed tokens.
var ClosedAT = []string{"geschlossen"}

// ClosedEN lists English closed tokens.
var ClosedEN = []string{"closed", "off"}

// ClosedDE lists German closed tokens.
var ClosedDE = []string{"geschlossen"}

// ClosedIT lists Italian closed tokens.
var ClosedIT = []string{"chiuso", "chiusi", "siamo chiusi"}

// ClosedNL lists Dutch closed tokens.
var ClosedNL = []string{"gesloten"}

// ClosedTH lists Thai closed tokens.
var ClosedTH = []string{"ปิดทำการ"}
