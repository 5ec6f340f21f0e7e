// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package persist serializes the board to durable storage and to export documents.

# Persisted Document

The board is stored as a JSON array of 19 records under one key
(DefaultKey, "catan_board_config"):

	[{"x":-2,"y":2,"type":"Forest","diceNumber":6}, ...]

type is "" for an empty tile. diceNumber is 0 for an empty tile or a Desert;
on read it may also be "" or null.

# Loading

Load never fails. A missing document, or one that is not a JSON array, yields
an empty board. A bad record or field only affects its own tile, and a record
that would exceed a supply limit is left empty.
Records are overlaid on the canonical layout by index, so stored coordinates
are ignored and a short document leaves the remaining tiles empty.

# Export

Export renders the same records for download, as indented JSON or YAML, with
unset type and diceNumber written as "":

	data, err := persist.Export(b, persist.FormatJSON)
*/
package persist
