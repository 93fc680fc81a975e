package entity

// PaymentStatus estado de pago de una venta o gasto.
type PaymentStatus string

const (
	PaymentPago    PaymentStatus = "pago"    // pagado por completo
	PaymentFiado   PaymentStatus = "fiado"   // vendido a crédito, nada pagado
	PaymentParcial PaymentStatus = "parcial" // pagado en parte
)

// Valid indica si el estado pertenece al enum.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPago, PaymentFiado, PaymentParcial:
		return true
	}
	return false
}

// Outstanding indica si una venta con este estado deja saldo pendiente al cliente.
func (s PaymentStatus) Outstanding() bool {
	return s == PaymentFiado || s == PaymentParcial
}

// ExpenseCategory categoría fija de un gasto.
type ExpenseCategory string

const (
	CategoryIngredientes ExpenseCategory = "ingredientes"
	CategoryFornecedores ExpenseCategory = "fornecedores"
	CategoryAguaLuzGas   ExpenseCategory = "agua_luz_gas"
	CategorySalarios     ExpenseCategory = "salarios"
	CategoryAluguel      ExpenseCategory = "aluguel"
	CategoryManutencao   ExpenseCategory = "manutencao"
	CategoryOutros       ExpenseCategory = "outros"
)

// ExpenseCategories en el orden en que se presentan en reportes.
var ExpenseCategories = []ExpenseCategory{
	CategoryIngredientes,
	CategoryFornecedores,
	CategoryAguaLuzGas,
	CategorySalarios,
	CategoryAluguel,
	CategoryManutencao,
	CategoryOutros,
}

// Valid indica si la categoría pertenece al enum.
func (c ExpenseCategory) Valid() bool {
	for _, v := range ExpenseCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Label nombre legible (pt-BR) usado en reportes.
func (c ExpenseCategory) Label() string {
	switch c {
	case CategoryIngredientes:
		return "Ingredientes"
	case CategoryFornecedores:
		return "Fornecedores"
	case CategoryAguaLuzGas:
		return "Água/Luz/Gás"
	case CategorySalarios:
		return "Salários"
	case CategoryAluguel:
		return "Aluguel"
	case CategoryManutencao:
		return "Manutenção"
	case CategoryOutros:
		return "Outros"
	}
	return string(c)
}
