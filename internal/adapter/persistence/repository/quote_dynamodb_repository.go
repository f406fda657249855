package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/domain/money"
	"whitepaper_billing/internal/usecase/interfaces"
)

const defaultQuotesTableName = "quotes"

type quoteHeaderItem struct {
	ID         string          `dynamodbav:"id"`
	Number     string          `dynamodbav:"number"`
	Client     entities.Client `dynamodbav:"client"`
	IssueDate  string          `dynamodbav:"issue_date"`
	ExpiryDate string          `dynamodbav:"expiry_date"`
	Notes      string          `dynamodbav:"notes,omitempty"`
	Terms      string          `dynamodbav:"terms,omitempty"`
	Status     string          `dynamodbav:"status"`
	CreatedAt  string          `dynamodbav:"created_at"`
	UpdatedAt  string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists the Quote aggregate in DynamoDB.
//
// Table requirements:
//   - header PK: id (quotes table)
//   - item rows in the shared document_items table
//
// Save/Delete follow the same full-replacement contract as the invoice
// repository.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	items     documentItemStore
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		items:     newDocumentItemStore(ddb),
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteHeaderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		q, err := r.hydrate(ctx, it)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteHeaderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return r.hydrate(ctx, it)
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteHeaderItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Quote{}, err
	}

	if err := r.items.replace(ctx, entities.DocumentKindQuote, q.ID, q.Items); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	if err := r.items.deleteAll(ctx, id); err != nil {
		return err
	}

	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *QuoteDynamoRepository) hydrate(ctx context.Context, it quoteHeaderItem) (entities.Quote, error) {
	items, err := r.items.load(ctx, it.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteHeaderItem(it, items), nil
}

func toQuoteHeaderItem(q entities.Quote) quoteHeaderItem {
	return quoteHeaderItem{
		ID:         q.ID,
		Number:     q.Number,
		Client:     q.Client,
		IssueDate:  q.IssueDate.UTC().Format(time.RFC3339Nano),
		ExpiryDate: q.ExpiryDate.UTC().Format(time.RFC3339Nano),
		Notes:      q.Notes,
		Terms:      q.Terms,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteHeaderItem(it quoteHeaderItem, items []entities.LineItem) entities.Quote {
	issueDate, _ := time.Parse(time.RFC3339Nano, it.IssueDate)
	expiryDate, _ := time.Parse(time.RFC3339Nano, it.ExpiryDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Quote{
		ID:         it.ID,
		Number:     it.Number,
		Client:     it.Client,
		IssueDate:  issueDate,
		ExpiryDate: expiryDate,
		Items:      items,
		Notes:      it.Notes,
		Terms:      it.Terms,
		Status:     entities.QuoteStatus(it.Status),
		Subtotal:   money.DocumentSubtotal(items),
		TaxTotal:   money.DocumentTax(items),
		Total:      money.DocumentTotal(items),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
