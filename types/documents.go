package types

// Document types accepted by the CRPT "create document" endpoint.
const (
	DocTypeIntroduceGoods    = "LP_INTRODUCE_GOODS"
	DocTypeIntroduceGoodsXml = "LP_INTRODUCE_GOODS_XML"
	DocTypeIntroduceGoodsCsv = "LP_INTRODUCE_GOODS_CSV"
)

// Production types for LP_INTRODUCE_GOODS documents.
const (
	ProductionTypeOwn      = "OWN_PRODUCTION"
	ProductionTypeContract = "CONTRACT_PRODUCTION"
)

// Certificate document types for Product.
const (
	CertificateTypeConformity  = "CONFORMITY_CERTIFICATE"
	CertificateTypeDeclaration = "CONFORMITY_DECLARATION"
)

// Document describes an LP_INTRODUCE_GOODS document: introduction into
// circulation of goods produced in the Russian Federation.
type Document struct {
	Description     *DocumentDescription `json:"description,omitempty"`
	DocId           string               `json:"doc_id"`
	DocStatus       string               `json:"doc_status"`
	DocType         string               `json:"doc_type"`
	ImportRequest   *bool                `json:"importRequest,omitempty"`
	OwnerInn        string               `json:"owner_inn"`
	ParticipantInn  string               `json:"participant_inn"`
	ProducerInn     string               `json:"producer_inn"`
	ProductionDate  string               `json:"production_date"`
	ProductionType  string               `json:"production_type"`
	Products        []Product            `json:"products"`
	RegDate         string               `json:"reg_date"`
	RegNumber       string               `json:"reg_number,omitempty"`
}

type DocumentDescription struct {
	ParticipantInn string `json:"participantInn"`
}

type Product struct {
	CertificateDocument       string `json:"certificate_document,omitempty"`
	CertificateDocumentDate   string `json:"certificate_document_date,omitempty"`
	CertificateDocumentNumber string `json:"certificate_document_number,omitempty"`
	OwnerInn                  string `json:"owner_inn"`
	ProducerInn               string `json:"producer_inn"`
	ProductionDate            string `json:"production_date"`
	TnvedCode                 string `json:"tnved_code"`
	UitCode                   string `json:"uit_code,omitempty"`
	UituCode                  string `json:"uitu_code,omitempty"`
}

// CreateDocumentResponse is the success payload of the create-document
// endpoint: the registered document identifier.
type CreateDocumentResponse struct {
	Value string `json:"value"`
}

// ErrorResponse is the error payload CRPT returns on non-2xx statuses.
type ErrorResponse struct {
	Code         string `json:"code"`
	ErrorMessage string `json:"error_message"`
	Description  string `json:"description"`
}
