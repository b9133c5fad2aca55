package export

import (
	"fmt"
	"os"
	"path/filepath"

	goparquet "github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"

	"github.com/copperbi/coppergen/internal/model"
)

const parquetBatchSize = 5000

// WriteTransactionsParquet writes the fact table as a snappy-compressed
// Parquet file at outDir/transactions.parquet, the columnar fast path
// for the BI layer. Written to a temp name and renamed into place.
func WriteTransactionsParquet(ds *model.Dataset, outDir string) error {
	path := filepath.Join(outDir, "transactions.parquet")
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	writer := goparquet.NewGenericWriter[model.TransactionParquetRow](f,
		goparquet.Compression(&goparquet.Snappy),
	)

	batch := make([]model.TransactionParquetRow, 0, parquetBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := writer.Write(batch); err != nil {
			return fmt.Errorf("write parquet batch: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	for i := range ds.Transactions {
		batch = append(batch, ds.Transactions[i].ToParquetRow(roundTo))
		if len(batch) == parquetBatchSize {
			if err := flush(); err != nil {
				f.Close()
				return err
			}
		}
	}
	if err := flush(); err != nil {
		f.Close()
		return err
	}

	if err := writer.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close parquet file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("swap parquet into place: %w", err)
	}
	return nil
}

func roundTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
