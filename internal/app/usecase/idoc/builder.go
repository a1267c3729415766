package idoc

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/mverhoef/go-order-bridge/internal/app/entity"
)

const (
	docType     = "ORDERS05"
	messageType = "ORDERS"
	senderPort  = "ORDERBRIDGE"
	partnerType = "LS"

	currency      = "EUR"
	unitOfMeasure = "ST"
	priceUnit     = "1"

	dateLayout = "20060102"

	// line positions start at 000010 and advance in steps of 10
	positionStep = 10
)

// Document is an ORDERS05 iDoc: one control record, one header segment and
// one line segment per order line, in input order.
type Document struct {
	XMLName xml.Name `xml:"ORDERS05"`
	IDOC    IDOC     `xml:"IDOC"`
}

type IDOC struct {
	Begin   string        `xml:"BEGIN,attr"`
	Control ControlRecord `xml:"EDI_DC40"`
	Header  HeaderSegment `xml:"E1EDK01"`
	Lines   []LineSegment `xml:"E1EDP01"`
}

type ControlRecord struct {
	Segment        string `xml:"SEGMENT,attr"`
	TableName      string `xml:"TABNAM"`
	DocumentNumber string `xml:"DOCNUM"`
	DocType        string `xml:"IDOCTYP"`
	MessageType    string `xml:"MESTYP"`
	SenderPort     string `xml:"SNDPOR"`
	PartnerType    string `xml:"SNDPRT"`
}

type HeaderSegment struct {
	Segment        string `xml:"SEGMENT,attr"`
	Currency       string `xml:"CURCY"`
	DocumentNumber string `xml:"BELNR"`
	OrderReference string `xml:"BSTKD"`
	CustomerNumber string `xml:"KUNNR"`
	Date           string `xml:"AEDAT"`
}

type LineSegment struct {
	Segment        string `xml:"SEGMENT,attr"`
	Position       string `xml:"POSEX"`
	Quantity       string `xml:"MENGE"`
	Unit           string `xml:"MENEE"`
	NetPrice       string `xml:"NETPR"`
	PriceUnit      string `xml:"PEINH"`
	MaterialNumber string `xml:"MATNR"`
	Description    string `xml:"ARKTX"`
}

// Build renders an order into its document form. It is a pure function of
// the order's fields: an equal order always yields an equal document, which
// keeps retried submissions byte-identical.
func Build(order entity.Order) Document {
	documentNumber := fmt.Sprintf("%010d", order.ID)

	lines := make([]LineSegment, 0, len(order.Lines))
	for i, line := range order.Lines {
		title := line.ProductTitle
		if title == "" {
			title = fmt.Sprintf("Product %d", line.ProductID)
		}

		lines = append(lines, LineSegment{
			Segment:        "1",
			Position:       fmt.Sprintf("%06d", (i+1)*positionStep),
			Quantity:       strconv.Itoa(line.Quantity),
			Unit:           unitOfMeasure,
			NetPrice:       line.UnitPrice.StringFixed(2),
			PriceUnit:      priceUnit,
			MaterialNumber: fmt.Sprintf("%018d", line.ProductID),
			Description:    title,
		})
	}

	return Document{
		IDOC: IDOC{
			Begin: "1",
			Control: ControlRecord{
				Segment:        "1",
				TableName:      "EDI_DC40",
				DocumentNumber: documentNumber,
				DocType:        docType,
				MessageType:    messageType,
				SenderPort:     senderPort,
				PartnerType:    partnerType,
			},
			Header: HeaderSegment{
				Segment:        "1",
				Currency:       currency,
				DocumentNumber: documentNumber,
				OrderReference: documentNumber,
				CustomerNumber: fmt.Sprintf("%010d", order.CustomerID),
				Date:           order.Date.UTC().Format(dateLayout),
			},
			Lines: lines,
		},
	}
}

// Bytes serializes the document for submission.
func Bytes(doc Document) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error while marshalling idoc: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
