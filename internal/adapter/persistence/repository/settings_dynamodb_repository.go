package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/usecase/interfaces"
)

const (
	defaultSettingsTableName = "company_settings"
	settingsRecordID         = "company"
)

type settingsItem struct {
	ID            string               `dynamodbav:"id"`
	Name          string               `dynamodbav:"name"`
	Email         string               `dynamodbav:"email,omitempty"`
	Phone         string               `dynamodbav:"phone,omitempty"`
	Address       string               `dynamodbav:"address,omitempty"`
	VATNumber     string               `dynamodbav:"vat_number,omitempty"`
	Website       string               `dynamodbav:"website,omitempty"`
	BankDetails   entities.BankDetails `dynamodbav:"bank_details"`
	InvoicePrefix string               `dynamodbav:"invoice_prefix"`
	QuotePrefix   string               `dynamodbav:"quote_prefix"`
	InvoiceTerms  string               `dynamodbav:"invoice_terms,omitempty"`
	QuoteTerms    string               `dynamodbav:"quote_terms,omitempty"`
}

// SettingsDynamoRepository persists the singleton CompanySettings record.
//
// Table requirements:
//   - PK: id (string), always the fixed value "company"

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanySettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.CompanySettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: settingsRecordID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.DefaultCompanySettings(), nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CompanySettings{}, err
	}
	return fromSettingsItem(it), nil
}

func (r *SettingsDynamoRepository) Update(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error) {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.CompanySettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CompanySettings{}, err
	}
	return s, nil
}

func toSettingsItem(s entities.CompanySettings) settingsItem {
	return settingsItem{
		ID:            settingsRecordID,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		VATNumber:     s.VATNumber,
		Website:       s.Website,
		BankDetails:   s.BankDetails,
		InvoicePrefix: s.InvoicePrefix,
		QuotePrefix:   s.QuotePrefix,
		InvoiceTerms:  s.InvoiceTerms,
		QuoteTerms:    s.QuoteTerms,
	}
}

func fromSettingsItem(it settingsItem) entities.CompanySettings {
	return entities.CompanySettings{
		Name:          it.Name,
		Email:         it.Email,
		Phone:         it.Phone,
		Address:       it.Address,
		VATNumber:     it.VATNumber,
		Website:       it.Website,
		BankDetails:   it.BankDetails,
		InvoicePrefix: it.InvoicePrefix,
		QuotePrefix:   it.QuotePrefix,
		InvoiceTerms:  it.InvoiceTerms,
		QuoteTerms:    it.QuoteTerms,
	}
}
