package data

import (
    "encoding/csv"
    "errors"
    "os"
    "strconv"
    "time"
)

// LoadCSV lê o dataset gerado e devolve os registros na ordem do arquivo.
func LoadCSV(path string) ([]Expense, error) {
    f, err := os.Open(path)
    if err != nil { return nil, err }
    defer f.Close()
    r := csv.NewReader(f)
    rows, err := r.ReadAll()
    if err != nil { return nil, err }
    if len(rows) < 2 { return nil, errors.New("CSV vazio") }
    out := make([]Expense, 0, len(rows)-1)
    for i := 1; i < len(rows); i++ {
        row := rows[i]
        if len(row) < 15 { return nil, errors.New("CSV com colunas faltando na linha " + strconv.Itoa(i)) }
        reqDate, _ := time.Parse("2006-01-02", row[5])
        travelDate, _ := time.Parse("2006-01-02", row[6])
        amount, _ := strconv.ParseFloat(row[9], 64)
        fraud, _ := strconv.Atoi(row[14])
        out = append(out, Expense{
            ExpenseID:      row[0],
            RequestID:      row[1],
            RequesterID:    row[2],
            TravellerID:    row[3],
            ApproverID:     row[4],
            RequestDate:    reqDate,
            TravelDate:     travelDate,
            Category:       row[7],
            Description:    row[8],
            Amount:         amount,
            Currency:       row[10],
            JobTitle:       row[11],
            Department:     row[12],
            ApprovalStatus: row[13],
            Fraud:          fraud,
        })
    }
    return out, nil
}
