package models

import "strings"

// CompanyEntry seeds the directory: a canonical company name, its ticker,
// and any aliases the name commonly appears under.
type CompanyEntry struct {
	Name    string
	Ticker  string
	Aliases []string
}

// CompanyDirectory is a case-insensitive lookup from company name or alias
// to ticker symbol. Built once at startup, read-only afterwards.
type CompanyDirectory struct {
	nameToTicker map[string]string // lowercased name/alias -> ticker
	tickerToName map[string]string // lowercased ticker -> canonical name
}

// NewCompanyDirectory builds a directory from seed entries.
func NewCompanyDirectory(entries []CompanyEntry) *CompanyDirectory {
	d := &CompanyDirectory{
		nameToTicker: make(map[string]string, len(entries)*2),
		tickerToName: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" || e.Ticker == "" {
			continue
		}
		d.nameToTicker[strings.ToLower(e.Name)] = e.Ticker
		if _, ok := d.tickerToName[strings.ToLower(e.Ticker)]; !ok {
			d.tickerToName[strings.ToLower(e.Ticker)] = e.Name
		}
		for _, a := range e.Aliases {
			d.nameToTicker[strings.ToLower(a)] = e.Ticker
		}
	}
	return d
}

// Resolve looks up candidate as a company name or alias. Exact match only,
// case-insensitive; no fuzzy matching.
func (d *CompanyDirectory) Resolve(candidate string) (company, ticker string, ok bool) {
	t, found := d.nameToTicker[strings.ToLower(candidate)]
	if !found {
		return "", "", false
	}
	return candidate, t, true
}

// CompanyByTicker returns the canonical company name for a ticker, or ""
// when the ticker is unknown.
func (d *CompanyDirectory) CompanyByTicker(ticker string) string {
	return d.tickerToName[strings.ToLower(ticker)]
}

// Len reports the number of distinct name/alias keys.
func (d *CompanyDirectory) Len() int {
	return len(d.nameToTicker)
}

// DefaultCompanies is the built-in directory seed, used when the
// configuration supplies no entries of its own.
func DefaultCompanies() []CompanyEntry {
	return []CompanyEntry{
		{Name: "Apple Inc.", Ticker: "AAPL", Aliases: []string{"Apple", "Apple Inc"}},
		{Name: "Microsoft Corporation", Ticker: "MSFT", Aliases: []string{"Microsoft", "Microsoft Corp"}},
		{Name: "Alphabet Inc.", Ticker: "GOOGL", Aliases: []string{"Alphabet", "Google"}},
		{Name: "Amazon.com, Inc.", Ticker: "AMZN", Aliases: []string{"Amazon", "Amazon.com"}},
		{Name: "Meta Platforms, Inc.", Ticker: "META", Aliases: []string{"Meta", "Meta Platforms", "Facebook"}},
		{Name: "Tesla, Inc.", Ticker: "TSLA", Aliases: []string{"Tesla", "Tesla Motors"}},
		{Name: "NVIDIA Corporation", Ticker: "NVDA", Aliases: []string{"NVIDIA", "Nvidia Corp"}},
		{Name: "Netflix, Inc.", Ticker: "NFLX", Aliases: []string{"Netflix"}},
		{Name: "Intel Corporation", Ticker: "INTC", Aliases: []string{"Intel", "Intel Corp"}},
		{Name: "Advanced Micro Devices, Inc.", Ticker: "AMD", Aliases: []string{"AMD"}},
		{Name: "JPMorgan Chase & Co.", Ticker: "JPM", Aliases: []string{"JPMorgan", "JPMorgan Chase", "JP Morgan"}},
		{Name: "Bank of America Corporation", Ticker: "BAC", Aliases: []string{"Bank of America", "BofA"}},
		{Name: "The Goldman Sachs Group, Inc.", Ticker: "GS", Aliases: []string{"Goldman Sachs", "Goldman"}},
		{Name: "Exxon Mobil Corporation", Ticker: "XOM", Aliases: []string{"Exxon", "ExxonMobil", "Exxon Mobil"}},
		{Name: "The Boeing Company", Ticker: "BA", Aliases: []string{"Boeing"}},
		{Name: "Walmart Inc.", Ticker: "WMT", Aliases: []string{"Walmart"}},
		{Name: "The Walt Disney Company", Ticker: "DIS", Aliases: []string{"Disney", "Walt Disney"}},
		{Name: "The Coca-Cola Company", Ticker: "KO", Aliases: []string{"Coca-Cola", "Coca Cola", "Coke"}},
		{Name: "Pfizer Inc.", Ticker: "PFE", Aliases: []string{"Pfizer"}},
		{Name: "Johnson & Johnson", Ticker: "JNJ", Aliases: []string{"Johnson and Johnson", "J&J"}},
		{Name: "Visa Inc.", Ticker: "V", Aliases: []string{"Visa"}},
		{Name: "Mastercard Incorporated", Ticker: "MA", Aliases: []string{"Mastercard"}},
		{Name: "Salesforce, Inc.", Ticker: "CRM", Aliases: []string{"Salesforce"}},
		{Name: "Oracle Corporation", Ticker: "ORCL", Aliases: []string{"Oracle", "Oracle Corp"}},
		{Name: "International Business Machines Corporation", Ticker: "IBM", Aliases: []string{"IBM"}},
	}
}
