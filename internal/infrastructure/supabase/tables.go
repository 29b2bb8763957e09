package supabase

// Nomes das tabelas remotas.
const (
	tableEventTypes           = "event_types"
	tablePackages             = "packages"
	tablePaymentMethods       = "payment_methods"
	tablePackagePaymentLinks  = "package_payment_methods"
	tableContractTemplates    = "contract_templates"
	tableContratos            = "contratos"
	tablePhotographers        = "photographers"
	tableBusinessInfo         = "business_info"

	// selectLinkWithMethod join embutido do vínculo com a forma de pagamento.
	selectLinkWithMethod = "*,payment_methods(*)"
)
