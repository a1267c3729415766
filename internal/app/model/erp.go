package model

import "encoding/xml"

// ERPStatusResponse is the XML body the ERP endpoint returns after accepting
// a document.
type ERPStatusResponse struct {
	XMLName        xml.Name `xml:"ORDERS05_RESPONSE"`
	Status         int      `xml:"STATUS"`
	DocumentNumber string   `xml:"DOCNUM"`
	StockCode      string   `xml:"STOCK_CODE"`
}
