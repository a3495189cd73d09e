package main

import (
	"fmt"
	"os"

	calc "github.com/gigtax/t2125-calculator/internal/calculation"
	"github.com/gigtax/t2125-calculator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_report <ledger.yaml>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	ledger, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	mapper := calc.NewMapper().WithHomeOfficePercent(ledger.Estimator.HomeOfficePercent)
	report := mapper.GenerateT2125Data(ledger.Profile, ledger.Expenses, ledger.Income, ledger.Mileage, ledger.Assets, ledger.MileageSettings, nil)

	fmt.Printf("8299 gross income:  %s\n", report.Part3.Line8299.StringFixed(2))
	fmt.Printf("9368 expenses:      %s\n", report.Part4.Line9368.StringFixed(2))
	fmt.Printf("9281 motor vehicle: %s\n", report.Part4.Line9281.StringFixed(2))
	fmt.Printf("9936 CCA:           %s\n", report.Part4.Line9936.StringFixed(2))
	fmt.Printf("9945 home office:   %s\n", report.Part5.Line9945.StringFixed(2))
	fmt.Printf("9946 net income:    %s\n", report.Part5.Line9946.StringFixed(2))
	fmt.Printf("chart A %s of %s km (%s)\n",
		report.ChartA.BusinessKm.StringFixed(1), report.ChartA.TotalKm.StringFixed(1),
		report.ChartA.BusinessUsePercent.StringFixed(2))
	for _, w := range report.Warnings {
		fmt.Println("warning:", w)
	}
}
