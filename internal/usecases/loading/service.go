package loading

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prajwalcordiero/online-hackathon-1/internal/config"
	"github.com/prajwalcordiero/online-hackathon-1/internal/domain"
	"github.com/sirupsen/logrus"
)

// Colunas obrigatórias do arquivo de vendas, na ordem esperada pelo motor de insights
var requiredColumns = []string{
	domain.ColumnProductID,
	domain.ColumnStoreID,
	domain.ColumnRegion,
	domain.ColumnDailySalesUnits,
	domain.ColumnBasePrice,
	domain.ColumnCompetitorPrice,
}

// Loader define a interface para carregar o conjunto de dados de vendas
type Loader interface {
	// LoadSalesData lê o arquivo de vendas configurado e retorna a tabela carregada
	LoadSalesData() (*domain.SalesTable, error)
}

type Service struct {
	cfg *config.Config
}

// NewService cria uma nova instância do serviço de carregamento
func NewService(cfg *config.Config) Loader {
	return &Service{cfg: cfg}
}

// LoadSalesData lê o arquivo CSV de vendas do caminho configurado.
// O arquivo é aberto somente para leitura e nada fica em cache: cada
// chamada relê o conteúdo atual do disco. Todas as falhas retornam um
// *LoadError e nunca derrubam o chamador.
func (s *Service) LoadSalesData() (*domain.SalesTable, error) {
	path := s.cfg.Data.FilePath

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewLoadError(ErrDataFileNotFound, path, "")
		}
		return nil, NewLoadError(ErrDataFileRead, path, err.Error())
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, NewLoadError(ErrMalformedDataset, path, "empty data file")
	}
	if err != nil {
		return nil, NewLoadError(ErrDataFileRead, path, err.Error())
	}

	indexes, err := requiredColumnIndexes(header)
	if err != nil {
		return nil, NewLoadError(ErrMalformedDataset, path, err.Error())
	}

	table := &domain.SalesTable{Columns: header}

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, NewLoadError(ErrMalformedDataset, path, err.Error())
			}
			return nil, NewLoadError(ErrDataFileRead, path, err.Error())
		}

		line++
		record, err := parseRecord(row, indexes, line)
		if err != nil {
			return nil, NewLoadError(ErrMalformedDataset, path, err.Error())
		}

		table.Rows = append(table.Rows, row)
		table.Records = append(table.Records, record)
	}

	logrus.WithFields(logrus.Fields{
		"data_file": path,
		"rows":      len(table.Rows),
	}).Debug("Arquivo de vendas carregado")

	return table, nil
}

// requiredColumnIndexes localiza as colunas obrigatórias no cabeçalho.
// Colunas extras (por exemplo, marcadores de data) são toleradas e
// preservadas na tabela bruta.
func requiredColumnIndexes(header []string) (map[string]int, error) {
	indexes := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := indexes[name]; !ok {
			indexes[name] = i
		}
	}

	for _, column := range requiredColumns {
		if _, ok := indexes[column]; !ok {
			return nil, fmt.Errorf("missing required column %q", column)
		}
	}

	return indexes, nil
}

// parseRecord monta a visão tipada de uma linha do arquivo
func parseRecord(row []string, indexes map[string]int, line int) (domain.SalesRecord, error) {
	units, err := floatColumn(row, indexes, domain.ColumnDailySalesUnits, line)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	basePrice, err := floatColumn(row, indexes, domain.ColumnBasePrice, line)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	competitorPrice, err := floatColumn(row, indexes, domain.ColumnCompetitorPrice, line)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	return domain.SalesRecord{
		ProductID:       row[indexes[domain.ColumnProductID]],
		StoreID:         row[indexes[domain.ColumnStoreID]],
		Region:          row[indexes[domain.ColumnRegion]],
		DailySalesUnits: units,
		BasePrice:       basePrice,
		CompetitorPrice: competitorPrice,
	}, nil
}

func floatColumn(row []string, indexes map[string]int, column string, line int) (float64, error) {
	value, err := strconv.ParseFloat(row[indexes[column]], 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid value for column %q: %v", line, column, err)
	}
	return value, nil
}
