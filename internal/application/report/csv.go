package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jhoicas/pos-retail-api/internal/application/dto"
)

// Encabezados fijos de los CSV descargables. El orden es parte del contrato
// con las hojas de cálculo que los consumen.
var (
	salesCSVHeader     = []string{"order_id", "date", "customer", "payment_method", "status", "items", "total"}
	inventoryCSVHeader = []string{"product_id", "name", "category", "barcode", "price", "quantity", "visible", "promo"}
)

// WriteSalesCSV vuelca el reporte de ventas como CSV. Los montos van sin
// formato de moneda: los CSV son para máquinas, el formato es de pantalla.
func WriteSalesCSV(w io.Writer, resp *dto.SalesReportResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(salesCSVHeader); err != nil {
		return err
	}
	for _, row := range resp.Rows {
		record := []string{
			row.OrderID,
			row.Date.Format("2006-01-02 15:04:05"),
			row.CustomerName,
			row.PaymentMethod,
			row.Status,
			strconv.Itoa(row.ItemCount),
			row.Total.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteInventoryCSV vuelca el reporte de inventario como CSV.
func WriteInventoryCSV(w io.Writer, resp *dto.InventoryReportResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(inventoryCSVHeader); err != nil {
		return err
	}
	for _, row := range resp.Rows {
		record := []string{
			row.ProductID,
			row.Name,
			row.Category,
			row.Barcode,
			row.Price.StringFixed(2),
			strconv.Itoa(row.Quantity),
			strconv.FormatBool(row.Visible),
			strconv.FormatBool(row.Promo),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
