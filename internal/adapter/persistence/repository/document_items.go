package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"whitepaper_billing/internal/domain/entities"
)

const defaultDocumentItemsTableName = "document_items"

// documentItemRow is one line item row in the shared document_items table.
//
// Table requirements:
//   - PK: document_id (string)
//   - SK: id (string)
//
// Invoices and quotes share this table; kind disambiguates when both document
// tables are scanned together.

type documentItemRow struct {
	DocumentID  string `dynamodbav:"document_id"`
	ID          string `dynamodbav:"id"`
	Kind        string `dynamodbav:"kind"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	TaxRate     string `dynamodbav:"tax_rate"`
}

type documentItemStore struct {
	ddb       *dynamodb.Client
	tableName string
}

func newDocumentItemStore(ddb *dynamodb.Client) documentItemStore {
	return documentItemStore{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENT_ITEMS_TABLE", defaultDocumentItemsTableName),
	}
}

// replace deletes every stored row for the document and reinserts the given
// items. Partial item updates are never performed.
func (s documentItemStore) replace(ctx context.Context, kind entities.DocumentKind, documentID string, items []entities.LineItem) error {
	if err := s.deleteAll(ctx, documentID); err != nil {
		return err
	}

	for _, item := range items {
		row := documentItemRow{
			DocumentID:  documentID,
			ID:          item.ID,
			Kind:        string(kind),
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			UnitPrice:   item.UnitPrice.String(),
			TaxRate:     item.TaxRate.String(),
		}
		av, err := attributevalue.MarshalMap(row)
		if err != nil {
			return err
		}
		if _, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.tableName),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s documentItemStore) load(ctx context.Context, documentID string) ([]entities.LineItem, error) {
	rows, err := s.query(ctx, documentID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.LineItem, 0, len(rows))
	for _, row := range rows {
		quantity, err := decimal.NewFromString(row.Quantity)
		if err != nil {
			return nil, err
		}
		unitPrice, err := decimal.NewFromString(row.UnitPrice)
		if err != nil {
			return nil, err
		}
		taxRate, err := decimal.NewFromString(row.TaxRate)
		if err != nil {
			return nil, err
		}
		items = append(items, entities.LineItem{
			ID:          row.ID,
			Description: row.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			TaxRate:     taxRate,
		})
	}
	return items, nil
}

func (s documentItemStore) deleteAll(ctx context.Context, documentID string) error {
	rows, err := s.query(ctx, documentID)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key: map[string]types.AttributeValue{
				"document_id": &types.AttributeValueMemberS{Value: documentID},
				"id":          &types.AttributeValueMemberS{Value: row.ID},
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s documentItemStore) query(ctx context.Context, documentID string) ([]documentItemRow, error) {
	out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("document_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: documentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]documentItemRow, 0, len(out.Items))
	for _, raw := range out.Items {
		var row documentItemRow
		if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
