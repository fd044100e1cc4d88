package reporting

import (
	"context"
)

// PageFetcher retrieves one page of report rows starting at offset, with at
// most pageSize rows. Implementations issue the actual Data API call with
// all other request fields held fixed.
type PageFetcher func(ctx context.Context, offset, pageSize int64) (*ReportPage, error)

// Paginate drives a report to completion: it fetches pages sequentially,
// advancing the offset by the rows received, until the API is exhausted or
// the accumulated rows reach limit. Pages cannot be fetched concurrently
// since each offset depends on the size of the previous page.
//
// Any page error fails the whole call and discards pages fetched so far;
// callers never observe partially-paginated data.
func Paginate(ctx context.Context, start, limit int64, fetch PageFetcher) ([]*ReportPage, error) {
	if limit <= 0 || limit > MaxRowLimit {
		limit = MaxRowLimit
	}

	var pages []*ReportPage
	var accumulated int64

	offset := start
	for accumulated < limit {
		pageSize := limit - accumulated
		if pageSize > DefaultPageSize {
			pageSize = DefaultPageSize
		}

		page, err := fetch(ctx, offset, pageSize)
		if err != nil {
			return nil, err
		}

		rows := int64(len(page.Rows))
		if rows > 0 {
			pages = append(pages, page)
			accumulated += rows
			offset += rows
		}

		// A short or empty page means the API has no more rows, as does
		// reaching the declared total.
		if rows < pageSize {
			break
		}
		if page.TotalRows > 0 && offset >= page.TotalRows {
			break
		}
	}

	return pages, nil
}
