package coinsim

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/PaesslerAG/jsonpath"
)

/*
	Quote documents are the JSON export format of the common listing APIs:

	{
	    "data": [
	        {
	            "symbol": "BTC",
	            "name": "Bitcoin",
	            "quote": {
	                "USD": { "price": 50123.45 }
	            }
	        }
	    ]
	}
*/

// ImportPrices applies prices from an exported quote document to the
// catalog. Symbols unknown to the catalog are logged and skipped, prices
// are floor-clamped like any other price update. It returns the number of
// assets whose price was updated.
//
// The document is a local file; there is no live feed in the simulator.
func ImportPrices(r io.Reader, c *Catalog) (int, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return 0, fmt.Errorf("quote document is not a correct json: %w", err)
	}

	jval, err := jsonpath.Get("$.data", jobj)
	if err != nil {
		return 0, fmt.Errorf("quote document has no data list: %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return 0, fmt.Errorf("quote document data is not a list")
	}

	updated := 0
	for i, jitem := range jlist {
		jsym, err := jsonpath.Get("$.symbol", jitem)
		if err != nil {
			return updated, fmt.Errorf("quote entry %d has no symbol: %w", i, err)
		}
		symbol, ok := jsym.(string)
		if !ok {
			return updated, fmt.Errorf("quote entry %d: symbol is not a string", i)
		}

		asset, found := c.Find(symbol)
		if !found {
			log.Printf("skipping quote entry %d: symbol %q is not in the catalog", i, symbol)
			continue
		}

		path := "$.quote." + ReportingCurrency + ".price"
		jprice, err := jsonpath.Get(path, jitem)
		if err != nil {
			return updated, fmt.Errorf("quote entry %q: %q: %w", symbol, path, err)
		}
		price, ok := jprice.(float64)
		if !ok {
			return updated, fmt.Errorf("quote entry %q: price is not a number, got %v", symbol, jprice)
		}

		asset.setPrice(M(price, ReportingCurrency))
		updated++
	}
	return updated, nil
}
