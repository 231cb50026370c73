// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package dictionary

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ExportFilename is the attachment name of the downloaded dictionary.
const ExportFilename = "my_dictionary.txt"

// exportTimeLayout is the timestamp format used in the export header.
const exportTimeLayout = "2006-01-02 15:04:05"

/*
Export renders the user's entire dictionary as a plain-text document.

Description: Produces a header block (owner, total count, export timestamp)
followed by one numbered "text - translation" line per entry. Entries appear
newest first, matching the list endpoint's ordering, and the export is never
paginated.

Parameters:
  - context: context.Context
  - userID: string
  - username: Owner name printed in the header

Returns:
  - []byte: The rendered document
  - error: Storage failures
*/
func (service *Service) Export(context context.Context, userID, username string) ([]byte, error) {
	entries, err := service.repository.ListAll(context, userID)
	if err != nil {
		return nil, err
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "Personal dictionary of %s\n", username)
	fmt.Fprintf(&builder, "Total words: %d\n", len(entries))
	fmt.Fprintf(&builder, "Exported at: %s\n", time.Now().Format(exportTimeLayout))
	builder.WriteString("\n")

	for index, entry := range entries {
		fmt.Fprintf(&builder, "%d. %s - %s\n", index+1, entry.Text, entry.Translation)
	}

	return []byte(builder.String()), nil
}
