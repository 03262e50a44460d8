package events

import (
	"fmt"
	"strings"
)

const displayDateLayout = "02/01/2006"

// Summary renders the detailed quote shown to the client when the booking is
// finalized: each price line the category supports followed by the chosen
// food and beverages.
func Summary(q Quote) string {
	e := q.Base()
	b := q.Breakdown()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Resumo do evento: %s (%s)\n", e.Category(), e.Tier())
	fmt.Fprintf(&sb, "Data do evento: %s - Espaço: %s - Convidados: %d\n", e.Date().Format(displayDateLayout), e.Venue().Code(), e.GuestCount())
	fmt.Fprintf(&sb, "Valor do espaço:%.2f\n", b.Rent)

	for _, c := range b.Services {
		fmt.Fprintf(&sb, "%s:%.2f\n", serviceLabel(c.Service), c.Amount)
	}

	fmt.Fprintf(&sb, "Valor das comidas:%.2f\n", b.Food)
	sb.WriteString("Lista das comidas:\n")
	for _, f := range e.foods {
		fmt.Fprintf(&sb, "- %s\n", f.Name)
	}

	fmt.Fprintf(&sb, "Valor das bebidas:%.2f\n", b.Beverages)
	sb.WriteString("Lista das bebidas:\n")
	for _, bev := range e.beverages {
		if bev.Quantity > 0 {
			fmt.Fprintf(&sb, "- Bebida: %s - Quantidade: %d\n", bev.Name, bev.Quantity)
		}
	}

	fmt.Fprintf(&sb, "Valor total:%.2f\n", b.Total())
	return sb.String()
}

func serviceLabel(s Service) string {
	switch s {
	case ServiceTable:
		return "Valor dos itens de mesa"
	case ServiceDecoration:
		return "Valor da decoração"
	case ServiceCake:
		return "Valor do bolo"
	case ServiceMusic:
		return "Valor da música"
	}
	return string(s)
}
