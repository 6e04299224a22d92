package ptax

// quoteResponse is the OData envelope returned by CotacaoDolarDia
type quoteResponse struct {
	Value []quote `json:"value"`
}

// quote is one published dollar quote. BuyRate is a pointer so a missing
// field can be told apart from a zero rate.
type quote struct {
	BuyRate  *float64 `json:"cotacaoCompra"`
	SellRate *float64 `json:"cotacaoVenda"`
	QuotedAt string   `json:"dataHoraCotacao"`
}
